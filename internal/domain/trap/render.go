package trap

import "fmt"

// ActivationColor is the accent used for trap announcements
const ActivationColor = 0xaa2222

// BlockKind labels a block of rendered content
type BlockKind string

const (
	BlockFlavor      BlockKind = "flavor"
	BlockRollSummary BlockKind = "roll-summary"
	BlockVerdict     BlockKind = "verdict"
	BlockDamage      BlockKind = "damage"
	BlockEffect      BlockKind = "effect"
)

// Block is one labeled line of an announcement
type Block struct {
	Kind  BlockKind
	Label string
	Text  string
}

// Content is a rendered activation. Styling is left to the sink.
type Content struct {
	Title  string
	Color  int
	Blocks []Block
}

// Kinds lists the block kinds in order
func (c *Content) Kinds() []BlockKind {
	kinds := make([]BlockKind, len(c.Blocks))
	for i, block := range c.Blocks {
		kinds[i] = block.Kind
	}
	return kinds
}

// Render turns an activation result into content blocks. It is pure.
func Render(result *ActivationResult) *Content {
	content := &Content{
		Title: result.TrapName,
		Color: ActivationColor,
		Blocks: []Block{
			{Kind: BlockFlavor, Text: result.Message},
		},
	}

	verdict := result.Verdict
	if verdict == nil {
		return content
	}

	if result.Attack != nil && verdict.AttackRoll != nil {
		content.Blocks = append(content.Blocks, Block{
			Kind:  BlockRollSummary,
			Label: "Attack roll",
			Text: fmt.Sprintf("%d (%s) %+d vs %s %d",
				verdict.AttackRoll.Total, verdict.AttackRoll.Faces(), *result.Attack,
				result.Defense, verdict.DefenseValue),
		})
	}

	if verdict.TrapHit {
		content.Blocks = append(content.Blocks, Block{Kind: BlockVerdict, Label: "HIT!"})
		if result.Damage != "" {
			content.Blocks = append(content.Blocks, Block{Kind: BlockDamage, Label: "Damage", Text: result.Damage})
		} else {
			content.Blocks = append(content.Blocks, Block{
				Kind: BlockEffect,
				Text: result.VictimName + " falls prey to the trap's effects!",
			})
		}
		return content
	}

	content.Blocks = append(content.Blocks, Block{Kind: BlockVerdict, Label: "MISS!"})
	if result.Damage != "" && result.MissHalf {
		content.Blocks = append(content.Blocks, Block{
			Kind:  BlockDamage,
			Label: "Half damage",
			Text:  HalfDamageExpression(result.Damage),
		})
	}
	return content
}

// HalfDamageExpression wraps a damage expression in floor((...)/2)
func HalfDamageExpression(damage string) string {
	return "floor((" + damage + ")/2)"
}
