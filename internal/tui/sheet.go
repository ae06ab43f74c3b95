package tui

type sheetRow int

const (
	rowTimeFormat sheetRow = iota
	rowLanguage
	rowShowSeconds
	rowShowTimeOfDay
	rowTVMode
	rowTheme
	rowUseLocation
	rowTouchMode
	rowLock
	rowReset
	rowCount
)

// labelKeys maps each row to its dictionary key, in display order.
var labelKeys = map[sheetRow]string{
	rowTimeFormat:    "settings.timeFormat",
	rowLanguage:      "settings.language",
	rowShowSeconds:   "settings.showSeconds",
	rowShowTimeOfDay: "settings.showTimeOfDay",
	rowTVMode:        "settings.tvMode",
	rowTheme:         "settings.theme",
	rowUseLocation:   "settings.useLocationForTheme",
	rowTouchMode:     "settings.touchMode",
	rowLock:          "settings.lockSettings",
	rowReset:         "settings.reset",
}

// SheetState tracks the settings sheet overlay. Closing the sheet
// discards nothing: every change is persisted the moment it is made.
type SheetState struct {
	Open            bool
	Cursor          sheetRow
	ConfirmingReset bool
}

func (s *SheetState) moveCursor(delta int) {
	next := int(s.Cursor) + delta
	if next < 0 {
		next = int(rowCount) - 1
	}
	if next >= int(rowCount) {
		next = 0
	}
	s.Cursor = sheetRow(next)
}
