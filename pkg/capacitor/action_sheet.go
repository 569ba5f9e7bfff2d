package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var actionSheetShowActions = operation("ActionSheet", "showActions")

// ActionSheet presents a list of options in a native sheet.
var ActionSheet = &ActionSheetService{}

// ActionSheetService wraps the ActionSheet plugin.
type ActionSheetService struct{}

// ActionSheetButtonStyle controls how an option is rendered.
type ActionSheetButtonStyle string

const (
	ActionSheetDefault     ActionSheetButtonStyle = "DEFAULT"
	ActionSheetDestructive ActionSheetButtonStyle = "DESTRUCTIVE"
	// ActionSheetCancel should only be used on the last option.
	ActionSheetCancel ActionSheetButtonStyle = "CANCEL"
)

// ShowActionsOptions configures ShowActions.
type ShowActionsOptions struct {
	Title string `json:"title"`
	// Message is shown under the title on iOS only.
	Message *string             `json:"message,omitempty"`
	Options []ActionSheetButton `json:"options"`
}

// ActionSheetButton is one option in the sheet.
type ActionSheetButton struct {
	Title string `json:"title"`
	// Icon uses ionicon names and is only supported on web.
	Icon  *string                 `json:"icon,omitempty"`
	Style *ActionSheetButtonStyle `json:"style,omitempty"`
}

// ShowActionsResult holds the zero-based index of the chosen option.
type ShowActionsResult struct {
	Index int `json:"index"`
}

// ShowActions shows the sheet and waits for the user to pick an option.
func (s *ActionSheetService) ShowActions(ctx context.Context, opts ShowActionsOptions) (ShowActionsResult, error) {
	return platform.CallWithResult[ShowActionsOptions, ShowActionsResult](ctx, actionSheetShowActions, opts)
}
