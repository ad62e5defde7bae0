package analyzer

import (
	"strings"

	"github.com/uilens/uilens/domain"
)

// keywordRule maps a case-insensitive name keyword onto a subcategory.
// Rules are held in slices, not maps, so evaluation order is fixed.
type keywordRule struct {
	Keyword     string
	Subcategory string
}

// CategorizerConfig configures the AtomicCategorizer
type CategorizerConfig struct {
	// ExcludedTypes are design node types with no structural relevance
	ExcludedTypes []string

	// MoleculeMaxChildren is the child count above which a reusable
	// component is a molecule rather than an atom (default: 2)
	MoleculeMaxChildren int

	// LayoutMaxDepth is the depth at or below which a keyword-less frame
	// without visual properties routes to the layout level (default: 2)
	LayoutMaxDepth int

	// AtomKeywords, MoleculeKeywords, and OrganismKeywords are evaluated
	// top to bottom; the first hit wins
	AtomKeywords     []keywordRule
	MoleculeKeywords []keywordRule
	OrganismKeywords []keywordRule
}

// DefaultCategorizerConfig returns a config with sensible defaults
func DefaultCategorizerConfig() *CategorizerConfig {
	return &CategorizerConfig{
		ExcludedTypes:       []string{"BOOLEAN_OPERATION", "SLICE", "STICKY", "CONNECTOR"},
		MoleculeMaxChildren: 2,
		LayoutMaxDepth:      2,
		AtomKeywords: []keywordRule{
			{"button", "buttons"},
			{"btn", "buttons"},
			{"icon", "icons"},
			{"badge", "badges"},
			{"avatar", "avatars"},
			{"label", "typography"},
			{"divider", "dividers"},
		},
		MoleculeKeywords: []keywordRule{
			{"card", "cards"},
			{"input", "form-fields"},
			{"field", "form-fields"},
			{"search", "search"},
			{"dropdown", "dropdowns"},
			{"select", "dropdowns"},
			{"menu", "menus"},
			{"tab", "tabs"},
			{"chip", "chips"},
			{"toggle", "toggles"},
			{"breadcrumb", "breadcrumbs"},
		},
		OrganismKeywords: []keywordRule{
			{"nav", "navigation"},
			{"header", "headers"},
			{"footer", "footers"},
			{"hero", "heroes"},
			{"sidebar", "sidebars"},
			{"modal", "modals"},
			{"form", "forms"},
			{"table", "tables"},
			{"list", "lists"},
			{"section", "sections"},
		},
	}
}

// shapeTypes are design primitives that classify as atoms outright
var shapeTypes = map[string]string{
	"RECTANGLE": "shapes",
	"ELLIPSE":   "shapes",
	"POLYGON":   "shapes",
	"STAR":      "shapes",
	"LINE":      "dividers",
	"VECTOR":    "icons",
	"IMAGE":     "images",
}

// placement is an internal classification result
type placement struct {
	Level       domain.AtomicLevel
	Subcategory string
	Excluded    bool
}

// AtomicCategorizer classifies components and elements into the
// atoms/molecules/organisms/layout taxonomy using a fixed, deterministic
// rule table evaluated in priority order
type AtomicCategorizer struct {
	config *CategorizerConfig
}

// NewAtomicCategorizer creates a new AtomicCategorizer
func NewAtomicCategorizer(config *CategorizerConfig) *AtomicCategorizer {
	if config == nil {
		config = DefaultCategorizerConfig()
	}
	return &AtomicCategorizer{config: config}
}

// Categorize places every design component and implementation element into
// exactly one level/subcategory bucket, or the explicit excluded tally.
// Nothing is silently dropped.
func (ac *AtomicCategorizer) Categorize(design []domain.DesignComponent, impl []domain.ImplementationElement) *domain.CategorySchema {
	schema := domain.NewCategorySchema()

	for i := range design {
		c := &design[i]
		p := ac.classifyDesign(c)
		if p.Excluded {
			schema.Excluded++
			continue
		}
		bucket := schema.Bucket(p.Level, p.Subcategory)
		bucket.DesignColumn = append(bucket.DesignColumn, domain.CategoryItem{
			ID: c.ID, Name: c.Name, Type: c.Type,
		})
	}

	for i := range impl {
		e := &impl[i]
		p := ac.classifyImplementation(e)
		if p.Excluded {
			schema.Excluded++
			continue
		}
		bucket := schema.Bucket(p.Level, p.Subcategory)
		bucket.ImplementationColumn = append(bucket.ImplementationColumn, domain.CategoryItem{
			ID: e.ID, Name: e.Selector, Type: e.Type,
		})
	}

	return schema
}

// classifyDesign applies the design-side rules in priority order
func (ac *AtomicCategorizer) classifyDesign(c *domain.DesignComponent) placement {
	nodeType := strings.ToUpper(strings.TrimSpace(c.Type))
	name := strings.ToLower(c.Name)

	// 1. Structurally irrelevant node types
	for _, excluded := range ac.config.ExcludedTypes {
		if nodeType == excluded {
			return placement{Excluded: true}
		}
	}

	// 2. Text-bearing leaf nodes
	if nodeType == "TEXT" {
		return placement{Level: domain.LevelAtoms, Subcategory: "typography"}
	}

	// 3. Reusable instance/component nodes: atom or molecule by keyword
	// and child count
	if nodeType == "COMPONENT" || nodeType == "INSTANCE" || nodeType == "COMPONENT_SET" {
		if sub, ok := matchKeyword(name, ac.config.AtomKeywords); ok {
			return placement{Level: domain.LevelAtoms, Subcategory: sub}
		}
		if sub, ok := matchKeyword(name, ac.config.MoleculeKeywords); ok {
			return placement{Level: domain.LevelMolecules, Subcategory: sub}
		}
		if c.ChildCount <= ac.config.MoleculeMaxChildren {
			return placement{Level: domain.LevelAtoms, Subcategory: "components"}
		}
		return placement{Level: domain.LevelMolecules, Subcategory: "components"}
	}

	// 4. Shape primitives
	if sub, ok := shapeTypes[nodeType]; ok {
		return placement{Level: domain.LevelAtoms, Subcategory: sub}
	}

	// 5. Frames and groups: keyword tables first, then structural noise
	// routes to the layout level
	if nodeType == "FRAME" || nodeType == "GROUP" || nodeType == "SECTION" {
		if sub, ok := matchKeyword(name, ac.config.OrganismKeywords); ok {
			return placement{Level: domain.LevelOrganisms, Subcategory: sub}
		}
		if sub, ok := matchKeyword(name, ac.config.MoleculeKeywords); ok {
			return placement{Level: domain.LevelMolecules, Subcategory: sub}
		}
		if c.Depth <= ac.config.LayoutMaxDepth && !hasVisualProperties(c) {
			return placement{Level: domain.LevelLayout, Subcategory: "structure"}
		}
		return placement{Level: domain.LevelMolecules, Subcategory: "containers"}
	}

	return placement{Level: domain.LevelAtoms, Subcategory: "other"}
}

// classifyImplementation applies the implementation-side rules in priority order
func (ac *AtomicCategorizer) classifyImplementation(e *domain.ImplementationElement) placement {
	tag := strings.ToLower(strings.TrimSpace(e.TagName))
	role := strings.ToLower(strings.TrimSpace(e.Type))
	name := strings.ToLower(e.Selector)

	// 1. Non-rendered elements
	switch tag {
	case "script", "style", "meta", "link", "noscript", "template":
		return placement{Excluded: true}
	}

	// 2. Text-bearing leaves
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "label", "strong", "em", "blockquote":
		return placement{Level: domain.LevelAtoms, Subcategory: "typography"}
	}
	if role == "text" || role == "heading" || role == "paragraph" {
		return placement{Level: domain.LevelAtoms, Subcategory: "typography"}
	}

	// 3. Interactive and media primitives
	switch tag {
	case "button":
		return placement{Level: domain.LevelAtoms, Subcategory: "buttons"}
	case "input", "textarea":
		return placement{Level: domain.LevelAtoms, Subcategory: "inputs"}
	case "select":
		return placement{Level: domain.LevelMolecules, Subcategory: "dropdowns"}
	case "img", "picture", "video":
		return placement{Level: domain.LevelAtoms, Subcategory: "images"}
	case "svg", "i":
		return placement{Level: domain.LevelAtoms, Subcategory: "icons"}
	case "a":
		return placement{Level: domain.LevelAtoms, Subcategory: "links"}
	case "hr":
		return placement{Level: domain.LevelAtoms, Subcategory: "dividers"}
	}

	// 4. Semantic structure tags
	switch tag {
	case "nav":
		return placement{Level: domain.LevelOrganisms, Subcategory: "navigation"}
	case "header":
		return placement{Level: domain.LevelOrganisms, Subcategory: "headers"}
	case "footer":
		return placement{Level: domain.LevelOrganisms, Subcategory: "footers"}
	case "form":
		return placement{Level: domain.LevelOrganisms, Subcategory: "forms"}
	case "table":
		return placement{Level: domain.LevelOrganisms, Subcategory: "tables"}
	case "ul", "ol", "dl":
		return placement{Level: domain.LevelOrganisms, Subcategory: "lists"}
	case "aside":
		return placement{Level: domain.LevelOrganisms, Subcategory: "sidebars"}
	case "main", "section", "article":
		return placement{Level: domain.LevelOrganisms, Subcategory: "sections"}
	}

	// 5. Generic containers: selector keywords, then structural noise
	if sub, ok := matchKeyword(name, ac.config.OrganismKeywords); ok {
		return placement{Level: domain.LevelOrganisms, Subcategory: sub}
	}
	if sub, ok := matchKeyword(name, ac.config.MoleculeKeywords); ok {
		return placement{Level: domain.LevelMolecules, Subcategory: sub}
	}
	if sub, ok := matchKeyword(name, ac.config.AtomKeywords); ok {
		return placement{Level: domain.LevelAtoms, Subcategory: sub}
	}
	if tag == "div" || tag == "body" {
		if e.Text == "" && !hasVisualStyles(e) {
			return placement{Level: domain.LevelLayout, Subcategory: "structure"}
		}
		return placement{Level: domain.LevelMolecules, Subcategory: "containers"}
	}

	return placement{Level: domain.LevelAtoms, Subcategory: "other"}
}

// matchKeyword finds the first rule whose keyword occurs in the name
func matchKeyword(name string, rules []keywordRule) (string, bool) {
	for _, rule := range rules {
		if strings.Contains(name, rule.Keyword) {
			return rule.Subcategory, true
		}
	}
	return "", false
}

// hasVisualProperties reports whether a design component carries any
// visible styling of its own
func hasVisualProperties(c *domain.DesignComponent) bool {
	p := c.Properties
	if colors := p.Colors; colors != nil && (colors.Background != "" || colors.Text != "" || colors.Border != "") {
		return true
	}
	if effects := p.Effects; effects != nil && (effects.BorderRadius != "" || effects.Shadow != nil) {
		return true
	}
	return false
}

// hasVisualStyles reports whether an implementation element carries any
// visible styling of its own
func hasVisualStyles(e *domain.ImplementationElement) bool {
	for _, key := range []string{"backgroundColor", "borderColor", "boxShadow", "borderRadius"} {
		v, ok := styleValue(e, key)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "none", "transparent", "0px", "rgba(0, 0, 0, 0)":
			continue
		}
		return true
	}
	return false
}
