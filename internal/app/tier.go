package app

import "fmt"

// Tier is the qualitative bucket assigned to a final score ratio.
type Tier int

const (
	TierDontGiveUp Tier = iota
	TierGoodEffort
	TierVeryGood
	TierExcellent
)

// TierFor buckets score/total. total must be positive; callers reject empty catalogs up front.
func TierFor(score, total int) Tier {
	p := float64(score) / float64(total)
	switch {
	case p == 1:
		return TierExcellent
	case p >= 0.7:
		return TierVeryGood
	case p >= 0.4:
		return TierGoodEffort
	default:
		return TierDontGiveUp
	}
}

// Message is the text shown on the results screen for the tier.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excelente! Você gabaritou!"
	case TierVeryGood:
		return "Muito bem! Você conhece o assunto!"
	case TierGoodEffort:
		return "Bom esforço! Continue estudando."
	default:
		return "Não desanime! Reveja o material e tente novamente."
	}
}

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierVeryGood:
		return "very-good"
	case TierGoodEffort:
		return "good-effort"
	default:
		return "dont-give-up"
	}
}

func scoreText(score, total int) string {
	return fmt.Sprintf("Você acertou %d de %d perguntas!", score, total)
}

func progressLabel(index, total int) string {
	return fmt.Sprintf("Pergunta %d de %d", index+1, total)
}

func progressPercent(index, total int) float64 {
	return float64(index+1) / float64(total) * 100
}
