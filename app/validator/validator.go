// Package validator checks the syntax of fenced code snippets in post content.
package validator

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/umputun/shelf/app/blog"
)

// checkedFormats lists snippet languages with a syntax check.
var checkedFormats = []string{"json", "yaml", "xml", "toml", "ini", "hcl"}

// aliases maps fence languages to a checked format.
var aliases = map[string]string{"yml": "yaml", "tf": "hcl", "terraform": "hcl", "cfg": "ini", "conf": "ini"}

// Service validates code snippets.
type Service struct{}

// NewService creates a new validation service.
func NewService() *Service {
	return &Service{}
}

// SupportedFormats returns the snippet languages that get a syntax check.
func (s *Service) SupportedFormats() []string {
	return checkedFormats
}

// IsValidFormat reports whether lang, or its alias, has a syntax check.
func (s *Service) IsValidFormat(lang string) bool {
	return slices.Contains(checkedFormats, normalize(lang))
}

// Validate checks if code is valid for the given language.
// Returns nil for languages without a check.
func (s *Service) Validate(lang string, code []byte) error {
	switch normalize(lang) {
	case "json":
		return s.validateJSON(code)
	case "yaml":
		return s.validateYAML(code)
	case "xml":
		return s.validateXML(code)
	case "toml":
		return s.validateTOML(code)
	case "ini":
		return s.validateINI(code)
	case "hcl":
		return s.validateHCL(code)
	default:
		return nil
	}
}

// CheckPost validates every fenced block of the post content, reporting
// each broken block with its position among the code blocks.
func (s *Service) CheckPost(p blog.Post) error {
	var errs []error
	for i, block := range blog.CodeBlocks(p.Content) {
		if err := s.Validate(block.Lang, []byte(block.Text)); err != nil {
			errs = append(errs, fmt.Errorf("snippet %d (%s): %w", i+1, block.Lang, err))
		}
	}
	return errors.Join(errs...)
}

func normalize(lang string) string {
	if v, ok := aliases[lang]; ok {
		return v
	}
	return lang
}

func (s *Service) validateJSON(code []byte) error {
	var v any
	if err := json.Unmarshal(code, &v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func (s *Service) validateYAML(code []byte) error {
	var v any
	if err := yaml.Unmarshal(code, &v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}

// validateXML walks all tokens, a snippet must have at least one element.
func (s *Service) validateXML(code []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(code))
	hasElement := false
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("invalid xml: %w", err)
		}
		if _, ok := tok.(xml.StartElement); ok {
			hasElement = true
		}
	}
	if !hasElement {
		return errors.New("invalid xml: no root element found")
	}
	return nil
}

func (s *Service) validateTOML(code []byte) error {
	var v any
	if err := toml.Unmarshal(code, &v); err != nil {
		return fmt.Errorf("invalid toml: %w", err)
	}
	return nil
}

func (s *Service) validateINI(code []byte) error {
	if _, err := ini.Load(code); err != nil {
		return fmt.Errorf("invalid ini: %w", err)
	}
	return nil
}

func (s *Service) validateHCL(code []byte) error {
	parser := hclparse.NewParser()
	if _, diags := parser.ParseHCL(code, "snippet.hcl"); diags.HasErrors() {
		return fmt.Errorf("invalid hcl: %s", diags.Error())
	}
	return nil
}
