package lending

import "realestate-lending/internal/domain/ledger"

// RiskScore maps borrower history to 0 (lowest risk) .. 100 (highest).
func RiskScore(h ledger.BorrowerHistory, p Params) int {
	score := p.RiskBase + h.DefaultCount*p.RiskPerDefault
	score -= min(h.SuccessfulLoans*p.RiskPerSuccess, p.RiskSuccessCap)
	return max(0, min(100, score))
}
