// Package schema implements the two-pass manifest validator on top of
// JSON Schema Draft 2020-12. The permissive pass decides valid/invalid;
// the strict pass (same schema with additionalProperties closed) turns
// undeclared fields into warnings.
package schema

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abdidvp/addonlint/internal/domain"
)

const (
	permissiveURL = "https://addonlint.dev/schemas/manifest.json"
	strictURL     = "https://addonlint.dev/schemas/manifest-strict.json"
)

// Validator implements domain.ManifestValidator. It is safe for
// concurrent use once constructed.
type Validator struct {
	permissive *jsonschema.Schema
	strict     *jsonschema.Schema

	// doc is the decoded permissive schema, kept for declared-field
	// lookups when building unknown-field suggestions.
	doc map[string]any

	printer *message.Printer
}

// NewValidator compiles both schema variants from the embedded source.
func NewValidator() (*Validator, error) {
	permDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(ManifestSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal manifest schema: %w", err)
	}

	strictDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(ManifestSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal manifest schema: %w", err)
	}
	strictMap, ok := strictDoc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest schema is not an object")
	}
	strictMap["$id"] = strictURL
	strictify(strictDoc)

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(permissiveURL, permDoc); err != nil {
		return nil, fmt.Errorf("add manifest schema resource: %w", err)
	}
	if err := c.AddResource(strictURL, strictDoc); err != nil {
		return nil, fmt.Errorf("add strict schema resource: %w", err)
	}

	permissive, err := c.Compile(permissiveURL)
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	strict, err := c.Compile(strictURL)
	if err != nil {
		return nil, fmt.Errorf("compile strict schema: %w", err)
	}

	return &Validator{
		permissive: permissive,
		strict:     strict,
		doc:        permDoc.(map[string]any),
		printer:    message.NewPrinter(language.English),
	}, nil
}

// Validate runs the raw manifest text through both passes and shapes the
// outcome. Empty input and malformed JSON normalize into an Invalid
// outcome, never a Go error.
func (v *Validator) Validate(data []byte) (*domain.Outcome, error) {
	if strings.TrimSpace(string(data)) == "" {
		return domain.Invalid(domain.Issue{
			Code:    domain.CodeEmptyInput,
			Message: "input is empty",
		}), nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return domain.Invalid(domain.Issue{
			Code:    domain.CodeParseError,
			Message: fmt.Sprintf("not valid JSON: %v", err),
		}), nil
	}

	if err := v.permissive.Validate(doc); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("permissive pass: %w", err)
		}
		return domain.Invalid(v.collectIssues(verr)...), nil
	}

	manifest, err := domain.DecodeManifest(data)
	if err != nil {
		// Schema-valid JSON that the typed decoder rejects means the
		// schema and the struct disagree.
		return nil, fmt.Errorf("decoding validated manifest: %w", err)
	}

	if err := v.strict.Validate(doc); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("strict pass: %w", err)
		}
		warnings := v.collectUnknownFields(verr)
		if len(warnings) > 0 {
			return &domain.Outcome{
				Status:   domain.StatusWarnings,
				Issues:   warnings,
				Manifest: manifest,
			}, nil
		}
		// Strict failed without any additionalProperties violation; the
		// strict transform should make this impossible.
		return nil, fmt.Errorf("strict pass failed without unknown fields: %w", err)
	}

	return &domain.Outcome{Status: domain.StatusValid, Manifest: manifest}, nil
}

// collectIssues walks the error tree and emits one issue per leaf
// violation, with required-property leaves expanded so each missing
// field gets its own path.
func (v *Validator) collectIssues(verr *jsonschema.ValidationError) []domain.Issue {
	var issues []domain.Issue
	walkLeaves(verr, func(leaf *jsonschema.ValidationError) {
		base := joinPath(leaf.InstanceLocation)

		if req, ok := leaf.ErrorKind.(*kind.Required); ok {
			for _, missing := range req.Missing {
				issues = append(issues, domain.Issue{
					Code:    domain.CodeRequired,
					Path:    appendPath(base, missing),
					Message: fmt.Sprintf("missing required field %q", missing),
				})
			}
			return
		}

		issues = append(issues, domain.Issue{
			Code:    issueCode(leaf.ErrorKind),
			Path:    base,
			Message: leaf.ErrorKind.LocalizedString(v.printer),
		})
	})
	return issues
}

// collectUnknownFields extracts one issue per undeclared property from a
// strict-pass failure. Other leaf kinds are sibling noise from anyOf
// branches and are ignored.
func (v *Validator) collectUnknownFields(verr *jsonschema.ValidationError) []domain.Issue {
	var issues []domain.Issue
	seen := make(map[string]struct{})

	walkLeaves(verr, func(leaf *jsonschema.ValidationError) {
		extra, ok := leaf.ErrorKind.(*kind.AdditionalProperties)
		if !ok {
			return
		}
		declared := v.declaredAt(leaf.InstanceLocation)
		for _, prop := range extra.Properties {
			path := appendPath(joinPath(leaf.InstanceLocation), prop)
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}

			issue := domain.Issue{
				Code:    domain.CodeUnknownField,
				Path:    path,
				Message: fmt.Sprintf("field %q is not part of the manifest specification", prop),
			}
			if s := domain.SuggestField(prop, declared); s != "" {
				issue.Suggestion = s
				issue.Message += fmt.Sprintf(" (did you mean %q?)", s)
			}
			issues = append(issues, issue)
		}
	})
	return issues
}

func walkLeaves(verr *jsonschema.ValidationError, fn func(*jsonschema.ValidationError)) {
	if len(verr.Causes) == 0 {
		fn(verr)
		return
	}
	for _, cause := range verr.Causes {
		walkLeaves(cause, fn)
	}
}

func issueCode(k jsonschema.ErrorKind) string {
	switch k.(type) {
	case *kind.Required:
		return domain.CodeRequired
	case *kind.Type:
		return domain.CodeType
	case *kind.Enum, *kind.Const:
		return domain.CodeEnum
	case *kind.Pattern:
		return domain.CodePattern
	case *kind.Format:
		return domain.CodeFormat
	case *kind.MinItems:
		return domain.CodeMinItems
	case *kind.MinLength:
		return domain.CodeMinLength
	default:
		return domain.CodeSchema
	}
}

// joinPath renders an instance location as a dotted path with [i] array
// indices: ["catalogs", "0", "extra"] becomes "catalogs[0].extra".
func joinPath(segs []string) string {
	var b strings.Builder
	for _, s := range segs {
		if isIndex(s) {
			b.WriteString("[" + s + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

func appendPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// declaredAt walks the schema document along an instance location and
// returns the property names declared for the object found there.
func (v *Validator) declaredAt(loc []string) []string {
	node := v.resolve(v.doc)
	for _, seg := range loc {
		if isIndex(seg) {
			items, ok := node["items"].(map[string]any)
			if !ok {
				return nil
			}
			node = v.resolve(items)
			continue
		}
		props, ok := node["properties"].(map[string]any)
		if !ok {
			return nil
		}
		child, ok := props[seg].(map[string]any)
		if !ok {
			return nil
		}
		node = v.resolve(child)
	}

	props, ok := node["properties"].(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	return names
}

// resolve follows local $refs and, for anyOf, picks the branch that
// declares properties (the object form of string-or-object fields).
func (v *Validator) resolve(node map[string]any) map[string]any {
	for range 8 {
		if ref, ok := node["$ref"].(string); ok {
			if target := v.lookupRef(ref); target != nil {
				node = target
				continue
			}
		}
		if branches, ok := node["anyOf"].([]any); ok {
			for _, b := range branches {
				bm, ok := b.(map[string]any)
				if !ok {
					continue
				}
				if ref, ok := bm["$ref"].(string); ok {
					if target := v.lookupRef(ref); target != nil {
						bm = target
					}
				}
				if _, has := bm["properties"]; has {
					node = bm
					break
				}
			}
		}
		break
	}
	return node
}

func (v *Validator) lookupRef(ref string) map[string]any {
	const prefix = "#/$defs/"
	if !strings.HasPrefix(ref, prefix) {
		return nil
	}
	defs, ok := v.doc["$defs"].(map[string]any)
	if !ok {
		return nil
	}
	target, ok := defs[strings.TrimPrefix(ref, prefix)].(map[string]any)
	if !ok {
		return nil
	}
	return target
}
