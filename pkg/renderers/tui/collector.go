// Package tui collects resource form values through terminal prompts. It
// walks the form's fields in order, validating each answer and re-prompting
// on failure, so a submission built from it passes the pre-submit check.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// ErrTooManyAttempts is returned when a field keeps failing validation past
// the configured attempt cap.
var ErrTooManyAttempts = errors.New("tui: too many invalid attempts")

const (
	choiceFill = "Fill in resources now"
	choiceSkip = "Skip this item for now"
)

// Collector prompts for one item's resources over a terminal. It implements
// form.Collector.
type Collector struct {
	driver      PromptDriver
	maxAttempts int
}

// New builds a terminal collector backed by survey prompts.
func New(options ...Option) *Collector {
	c := &Collector{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Name identifies the collector in registries and logs.
func (c *Collector) Name() string {
	return "tui"
}

// Collect walks the form's fields in presentation order. On any item except
// the last the user may choose to skip, reported as form.ErrSkipRequested.
func (c *Collector) Collect(ctx context.Context, session *form.Session) error {
	f := session.Form()

	header := fmt.Sprintf("Resources for %s", f.Item.DetailName())
	if f.Item.Quantity > 1 {
		header = fmt.Sprintf("%s (x%d)", header, f.Item.Quantity)
	}
	if err := c.driver.Info(ctx, header); err != nil {
		return err
	}

	if !f.Last {
		choice, err := c.driver.Select(ctx, SelectConfig{
			Message: "This item needs resources before processing can start.",
			Options: []string{choiceFill, choiceSkip},
		})
		if err != nil {
			return err
		}
		if choice == 1 {
			return form.ErrSkipRequested
		}
	}

	for _, def := range f.Fields {
		if err := c.collectField(ctx, session, def); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) collectField(ctx context.Context, session *form.Session, def resource.FieldDefinition) error {
	for attempt := 0; ; attempt++ {
		if c.maxAttempts > 0 && attempt >= c.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, def.Name)
		}

		var value resource.Value
		switch {
		case def.Type.IsFile():
			path, err := c.driver.Input(ctx, InputConfig{
				Message: c.fileMessage(def),
				Help:    def.HelpText,
			})
			if err != nil {
				return err
			}
			if strings.TrimSpace(path) == "" {
				session.SetFile(def.ID, nil)
			} else {
				ref, err := resource.FileFromPath(strings.TrimSpace(path))
				if err != nil {
					if infoErr := c.driver.Error(ctx, err.Error()); infoErr != nil {
						return infoErr
					}
					continue
				}
				session.SetFile(def.ID, ref)
				value = resource.FileValue(ref)
			}
		default:
			current, _ := session.Value(def.ID)
			text, err := c.driver.Input(ctx, InputConfig{
				Message: c.textMessage(def),
				Default: current.Text,
				Help:    def.HelpText,
			})
			if err != nil {
				return err
			}
			session.SetText(def.ID, text)
			value = resource.TextValue(text)
		}

		if msg := resource.Validate(def, value); msg != "" {
			if err := c.driver.Error(ctx, msg); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (c *Collector) textMessage(def resource.FieldDefinition) string {
	label := def.Name
	if !def.Required {
		label += " (optional)"
	}
	return label + ":"
}

func (c *Collector) fileMessage(def resource.FieldDefinition) string {
	label := fmt.Sprintf("%s (path to %s file", def.Name, def.Type)
	if len(def.AllowedExtensions) > 0 {
		label += ", " + strings.Join(def.AllowedExtensions, "/")
	}
	label += ")"
	if !def.Required {
		label += " (optional)"
	}
	return label + ":"
}
