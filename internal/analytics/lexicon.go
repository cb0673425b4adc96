package analytics

// polarityLexicon maps lowercase terms to integer polarity weights in the
// -5..+5 range, following the AFINN word list conventions. Terms absent from
// the map contribute nothing to a text's score.
var polarityLexicon = map[string]int{
	// positive
	"admire":       3,
	"advantage":    2,
	"agree":        1,
	"agreeable":    2,
	"amazing":      4,
	"appreciate":   2,
	"appreciated":  2,
	"approval":     2,
	"approve":      2,
	"awesome":      4,
	"beautiful":    3,
	"beneficial":   2,
	"benefit":      2,
	"benefits":     2,
	"best":         3,
	"better":       2,
	"brilliant":    4,
	"care":         2,
	"clarity":      2,
	"clear":        1,
	"commend":      3,
	"commendable":  3,
	"confident":    2,
	"constructive": 2,
	"convenient":   2,
	"effective":    2,
	"empower":      2,
	"empowering":   2,
	"encourage":    2,
	"encouraging":  2,
	"enjoy":        2,
	"excellent":    3,
	"fair":         2,
	"fantastic":    4,
	"favor":        2,
	"favorable":    2,
	"fine":         2,
	"glad":         3,
	"good":         3,
	"grateful":     3,
	"great":        3,
	"happy":        3,
	"help":         2,
	"helpful":      2,
	"helps":        2,
	"hope":         2,
	"hopeful":      2,
	"impress":      3,
	"impressed":    3,
	"impressive":   3,
	"improve":      2,
	"improved":     2,
	"improvement":  2,
	"improves":     2,
	"innovative":   2,
	"inspire":      2,
	"inspiring":    2,
	"interesting":  2,
	"like":         2,
	"love":         3,
	"nice":         3,
	"outstanding":  5,
	"perfect":      3,
	"pleasant":     3,
	"pleased":      3,
	"positive":     2,
	"praise":       3,
	"progress":     2,
	"progressive":  2,
	"protect":      1,
	"protects":     1,
	"proud":        2,
	"reasonable":   2,
	"recommend":    2,
	"reliable":     2,
	"respect":      2,
	"right":        1,
	"robust":       2,
	"safe":         1,
	"satisfied":    2,
	"secure":       2,
	"sensible":     2,
	"significant":  1,
	"smart":        1,
	"solid":        2,
	"strong":       2,
	"succeed":      3,
	"success":      2,
	"successful":   3,
	"support":      2,
	"supported":    2,
	"supportive":   2,
	"supports":     2,
	"terrific":     4,
	"thank":        2,
	"thankful":     2,
	"thanks":       2,
	"thoughtful":   2,
	"transparent":  2,
	"trust":        1,
	"useful":       2,
	"valuable":     2,
	"welcome":      2,
	"win":          4,
	"wonderful":    4,
	"worthy":       2,

	// negative
	"abandon":        -2,
	"abuse":          -3,
	"alarming":       -2,
	"ambiguous":      -1,
	"angry":          -3,
	"annoying":       -2,
	"arbitrary":      -2,
	"awful":          -3,
	"bad":            -3,
	"biased":         -2,
	"blame":          -2,
	"broken":         -1,
	"burden":         -2,
	"burdensome":     -2,
	"chaos":          -2,
	"complicated":    -2,
	"concern":        -2,
	"concerned":      -2,
	"concerns":       -2,
	"confusing":      -2,
	"corrupt":        -3,
	"corruption":     -3,
	"costly":         -2,
	"damage":         -3,
	"damaging":       -3,
	"dangerous":      -2,
	"deficient":      -2,
	"delay":          -1,
	"delays":         -1,
	"destroy":        -3,
	"difficult":      -1,
	"disagree":       -2,
	"disappointed":   -2,
	"disappointing":  -2,
	"disaster":       -2,
	"discriminatory": -3,
	"dislike":        -2,
	"doubt":          -1,
	"excessive":      -2,
	"fail":           -2,
	"failed":         -2,
	"fails":          -2,
	"failure":        -2,
	"fear":           -2,
	"flaw":           -2,
	"flawed":         -2,
	"fraud":          -4,
	"harm":           -2,
	"harmful":        -2,
	"harms":          -2,
	"harsh":          -2,
	"hate":           -3,
	"horrible":       -3,
	"hurt":           -2,
	"ignore":         -1,
	"ignored":        -2,
	"ignores":        -1,
	"inadequate":     -2,
	"ineffective":    -2,
	"inefficient":    -2,
	"insufficient":   -2,
	"lack":           -2,
	"lacking":        -1,
	"lacks":          -2,
	"loophole":       -2,
	"loopholes":      -2,
	"lose":           -3,
	"loss":           -3,
	"mess":           -2,
	"misleading":     -3,
	"missing":        -2,
	"mistake":        -2,
	"mistakes":       -2,
	"negative":       -2,
	"neglect":        -2,
	"oppose":         -2,
	"opposed":        -2,
	"oppressive":     -2,
	"outdated":       -1,
	"pathetic":       -2,
	"poor":           -2,
	"poorly":         -2,
	"problem":        -2,
	"problematic":    -2,
	"problems":       -2,
	"reject":         -1,
	"rejected":       -2,
	"restrictive":    -2,
	"ridiculous":     -3,
	"risk":           -2,
	"risky":          -2,
	"sad":            -2,
	"severe":         -2,
	"terrible":       -3,
	"threat":         -2,
	"unacceptable":   -2,
	"unclear":        -1,
	"unfair":         -2,
	"unhappy":        -2,
	"unjust":         -2,
	"unnecessary":    -2,
	"unreasonable":   -2,
	"unsafe":         -2,
	"useless":        -2,
	"vague":          -2,
	"violate":        -2,
	"violates":       -2,
	"violation":      -2,
	"waste":          -1,
	"wasteful":       -2,
	"weak":           -2,
	"worry":          -3,
	"worrying":       -3,
	"worse":          -3,
	"worst":          -3,
	"wrong":          -2,
}
