package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCompass   = "\U000F018B" // 󰆋
	IconCheckList = "\U000F0C52" // 󰱒
	IconSuitcase  = "\U000F0D37" // 󰴷
	IconWeather   = "\U000F0599" // 󰖙
	IconChat      = "\U000F0B79" // 󰭹
	IconDismiss   = "✕"
)

// Packing checklist markers.
var (
	IconChecked   = "[x]"
	IconUnchecked = "[ ]"
)
