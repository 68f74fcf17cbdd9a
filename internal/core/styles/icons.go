package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconHanger = "\U000F0BCB" // 󰯋
	IconImage  = ""          //
	IconTag    = ""          //
)

// Notification icons
var (
	IconNotifyInfo    = "" //
	IconNotifySuccess = "" //
	IconNotifyWarning = "" //
	IconNotifyError   = "" //
)

// Gallery symbols
var (
	GalleryPrev       = "‹"
	GalleryNext       = "›"
	IndicatorActive   = "●"
	IndicatorInactive = "○"
)
