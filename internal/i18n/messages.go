package i18n

// Key identifies one entry in the UI message table.
type Key string

const (
	IntroBadge      Key = "intro.badge"
	IntroTitle      Key = "intro.title"
	IntroDesc       Key = "intro.desc"
	IntroStart      Key = "intro.start"
	PlayRefresh     Key = "play.refresh"
	PlayRefreshHint Key = "play.refresh_hint"
	PlayProgress    Key = "play.progress"
	PlayInstruction Key = "play.instruction"
	PlayQuitConfirm Key = "play.quit_confirm"
	PlayQuitYes     Key = "play.quit_yes"
	PlayQuitNo      Key = "play.quit_no"
	ResultSubtitle  Key = "result.subtitle"
	ResultRetake    Key = "result.retake"
	ResultTraits    Key = "result.traits"
	HintLanguage    Key = "hint.language"
	HintQuit        Key = "hint.quit"
	HintBack        Key = "hint.back"
	HintSelect      Key = "hint.select"
	HintNavigate    Key = "hint.navigate"
	HintLeave       Key = "hint.leave"
	HintStay        Key = "hint.stay"
	ErrorTitle      Key = "error.title"
	ErrorDismiss    Key = "error.dismiss"
)

var messages = map[Key]Text{
	IntroBadge: {EN: "Personality Test", ZH: "MBTI 人格测试"},
	IntroTitle: {EN: "Discover Your True Self", ZH: "探索真实的自己"},
	IntroDesc: {
		EN: "Answer a few questions to unlock your MBTI personality type. No boring questions. Refresh the ones you don't like!",
		ZH: "回答几个问题来解锁你的 MBTI 人格类型。拒绝枯燥——如果你不喜欢某个问题，随时刷新它！",
	},
	IntroStart:      {EN: "Start Assessment", ZH: "开始测试"},
	PlayRefresh:     {EN: "Refresh Question", ZH: "换一题"},
	PlayRefreshHint: {EN: "Swap this question for another one", ZH: "换一个问题"},
	// Formatted with (current, total).
	PlayProgress:    {EN: "Question %d / %d", ZH: "第 %d / %d 题"},
	PlayInstruction: {EN: "Select the option that best describes you naturally.", ZH: "选择最能自然描述你的选项。"},
	PlayQuitConfirm: {EN: "Leave the test? Your answers will be lost.", ZH: "退出测试？当前答案将不会保存。"},
	PlayQuitYes:     {EN: "[Y] Yes, leave", ZH: "[Y] 是，退出"},
	PlayQuitNo:      {EN: "[N] No, keep going", ZH: "[N] 否，继续"},
	ResultSubtitle:  {EN: "Your Personality Type", ZH: "你的人格类型"},
	ResultRetake:    {EN: "Retake Test", ZH: "重新测试"},
	ResultTraits:    {EN: "Traits Breakdown", ZH: "特质分析"},
	HintLanguage:    {EN: "Language", ZH: "语言"},
	HintQuit:        {EN: "Quit", ZH: "退出"},
	HintBack:        {EN: "Back", ZH: "返回"},
	HintSelect:      {EN: "Select", ZH: "选择"},
	HintNavigate:    {EN: "Navigate", ZH: "移动"},
	HintLeave:       {EN: "Leave", ZH: "退出测试"},
	HintStay:        {EN: "Keep going", ZH: "继续"},
	ErrorTitle:      {EN: "Something went wrong", ZH: "出错了"},
	ErrorDismiss:    {EN: "Press any key to go back", ZH: "按任意键返回"},
}

// dimensionTitles are keyed by dimension ID ("EI", "SN", ...).
var dimensionTitles = map[string]Text{
	"EI": {EN: "Energy: Extraversion vs Introversion", ZH: "能量：外向 vs 内向"},
	"SN": {EN: "Perception: Sensing vs Intuition", ZH: "感知：实感 vs 直觉"},
	"TF": {EN: "Judgment: Thinking vs Feeling", ZH: "判断：思考 vs 情感"},
	"JP": {EN: "Lifestyle: Judging vs Perceiving", ZH: "生活方式：判断 vs 感知"},
}

// traitNames are keyed by trait letter.
var traitNames = map[string]Text{
	"E": {EN: "Extraversion", ZH: "外向 (E)"},
	"I": {EN: "Introversion", ZH: "内向 (I)"},
	"S": {EN: "Sensing", ZH: "实感 (S)"},
	"N": {EN: "Intuition", ZH: "直觉 (N)"},
	"T": {EN: "Thinking", ZH: "思考 (T)"},
	"F": {EN: "Feeling", ZH: "情感 (F)"},
	"J": {EN: "Judging", ZH: "判断 (J)"},
	"P": {EN: "Perceiving", ZH: "感知 (P)"},
}

// Message returns the UI string for key. Unknown keys render as the key
// itself so a missing entry is visible rather than blank.
func Message(l Locale, key Key) string {
	t, ok := messages[key]
	if !ok {
		return string(key)
	}
	return t.In(l)
}

// DimensionTitle returns the heading shown above questions of a dimension.
func DimensionTitle(l Locale, dimension string) string {
	if t, ok := dimensionTitles[dimension]; ok {
		return t.In(l)
	}
	return dimension
}

// TraitName returns the display name of a trait letter.
func TraitName(l Locale, letter string) string {
	if t, ok := traitNames[letter]; ok {
		return t.In(l)
	}
	return letter
}
