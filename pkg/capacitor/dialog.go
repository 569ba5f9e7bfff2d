package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	dialogAlert   = operation("Dialog", "alert")
	dialogPrompt  = operation("Dialog", "prompt")
	dialogConfirm = operation("Dialog", "confirm")
)

// Dialog shows native alert, prompt and confirm dialogs.
var Dialog = &DialogService{}

// DialogService wraps the Dialog plugin.
type DialogService struct{}

// AlertOptions configures Alert.
type AlertOptions struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ButtonTitle string `json:"buttonTitle,omitempty"`
}

// PromptOptions configures Prompt.
type PromptOptions struct {
	Title             string  `json:"title"`
	Message           string  `json:"message"`
	OKButtonTitle     string  `json:"okButtonTitle,omitempty"`
	CancelButtonTitle string  `json:"cancelButtonTitle,omitempty"`
	InputPlaceholder  *string `json:"inputPlaceholder,omitempty"`
	InputText         *string `json:"inputText,omitempty"`
}

// PromptResult is the text entered and whether the prompt was cancelled.
type PromptResult struct {
	Value     string `json:"value,omitzero"`
	Cancelled bool   `json:"cancelled,omitzero"`
}

// ConfirmOptions configures Confirm.
type ConfirmOptions struct {
	Title             string `json:"title"`
	Message           string `json:"message"`
	OKButtonTitle     string `json:"okButtonTitle,omitempty"`
	CancelButtonTitle string `json:"cancelButtonTitle,omitempty"`
}

// ConfirmResult reports whether the user confirmed.
type ConfirmResult struct {
	Value bool `json:"value,omitzero"`
}

// Alert shows an alert and waits for it to be dismissed.
func (s *DialogService) Alert(ctx context.Context, opts AlertOptions) error {
	return platform.CallWith(ctx, dialogAlert, opts)
}

// Prompt asks the user for a line of text.
func (s *DialogService) Prompt(ctx context.Context, opts PromptOptions) (PromptResult, error) {
	return platform.CallWithResult[PromptOptions, PromptResult](ctx, dialogPrompt, opts)
}

// Confirm asks the user to confirm or cancel.
func (s *DialogService) Confirm(ctx context.Context, opts ConfirmOptions) (ConfirmResult, error) {
	return platform.CallWithResult[ConfirmOptions, ConfirmResult](ctx, dialogConfirm, opts)
}
