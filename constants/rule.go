package constants

type IntegralRule string

var (
	// IntegralRuleWrap sums every consecutive pair, the first slot paired with a zero predecessor
	IntegralRuleWrap IntegralRule = "wrap"
	// IntegralRuleComposite is the textbook composite trapezoid with halved end terms
	IntegralRuleComposite IntegralRule = "composite"
)

var IntegralRules = []IntegralRule{IntegralRuleWrap, IntegralRuleComposite}
