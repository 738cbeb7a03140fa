package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Manifest is the typed form of a Stremio addon manifest. It is only
// populated once the raw document has passed schema validation; unknown
// fields never reach it.
type Manifest struct {
	ID           string  `json:"id"`
	Version      string  `json:"version"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Logo         string  `json:"logo,omitempty"`
	Background   string  `json:"background,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`

	Types      []string   `json:"types"`
	IDPrefixes []string   `json:"idPrefixes,omitempty"`
	Resources  []Resource `json:"resources"`

	Catalogs      []Catalog `json:"catalogs"`
	AddonCatalogs []Catalog `json:"addonCatalogs,omitempty"`

	BehaviorHints *BehaviorHints `json:"behaviorHints,omitempty"`
	Config        []ConfigField  `json:"config,omitempty"`
}

// Resource is one entry of the manifest's resources array. The wire form
// is either a bare string ("stream") or an object with a name and
// per-resource type/prefix filters.
type Resource struct {
	Name       string   `json:"name"`
	Types      []string `json:"types,omitempty"`
	IDPrefixes []string `json:"idPrefixes,omitempty"`

	// shorthand records that the resource was declared as a bare string,
	// so re-encoding round-trips the original shape.
	shorthand bool
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = Resource{Name: name, shorthand: true}
		return nil
	}

	type resource Resource // drop methods to avoid recursion
	var obj resource
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Resource(obj)
	return nil
}

func (r Resource) MarshalJSON() ([]byte, error) {
	if r.shorthand {
		return json.Marshal(r.Name)
	}
	type resource Resource
	return json.Marshal(resource(r))
}

// Catalog describes a catalog the addon serves, optionally with extra
// query properties users can filter by.
type Catalog struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Extra  []Extra `json:"extra,omitempty"`
	Genres []string `json:"genres,omitempty"`

	// Legacy pre-extra declarations, still emitted by older addons.
	ExtraSupported []string `json:"extraSupported,omitempty"`
	ExtraRequired  []string `json:"extraRequired,omitempty"`
}

// Extra is a single supported extra property of a catalog.
type Extra struct {
	Name         string   `json:"name"`
	IsRequired   bool     `json:"isRequired,omitempty"`
	Options      []string `json:"options,omitempty"`
	OptionsLimit int      `json:"optionsLimit,omitempty"`
}

// BehaviorHints carries the flags Stremio uses to adjust how the addon is
// presented and installed.
type BehaviorHints struct {
	Adult                 bool `json:"adult,omitempty"`
	P2P                   bool `json:"p2p,omitempty"`
	Configurable          bool `json:"configurable,omitempty"`
	ConfigurationRequired bool `json:"configurationRequired,omitempty"`
}

// ConfigField describes one user-configurable setting of the addon.
type ConfigField struct {
	Key      string   `json:"key"`
	Type     string   `json:"type"`
	Default  string   `json:"default,omitempty"`
	Title    string   `json:"title,omitempty"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// DecodeManifest decodes pre-validated manifest JSON into its typed form.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

// Summary is the one-line description rendered for a valid manifest.
func (m *Manifest) Summary() string {
	return fmt.Sprintf("%s %s (%s)", m.Name, m.Version, m.ID)
}
