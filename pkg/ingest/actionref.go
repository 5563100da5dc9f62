package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// actionRefPattern splits a single action reference into its name,
// optional [edition], and optional (component & component & ...) list.
var actionRefPattern = regexp.MustCompile(`^([^\[\(\s]+)(?:\[(\d+)\])?(?:\((.+)\))?$`)

// actionRegistry tracks every action identity (name, edition) declared so
// far by the textual input, so a later plain reference to a combination
// reuses its components and a later combination reference to the same
// identity can be checked for consistency.
type actionRegistry struct {
	byKey map[string]model.Action
}

func newActionRegistry() *actionRegistry {
	return &actionRegistry{byKey: make(map[string]model.Action)}
}

// resolve parses token and returns the canonical Action for its identity,
// registering it on first mention and validating combination syntax
// against any prior mention of the same identity.
func (r *actionRegistry) resolve(token string) (model.Action, error) {
	name, edition, componentsRaw, err := parseActionRefParts(token)
	if err != nil {
		return model.Action{}, err
	}
	key := model.Action{Name: name, Edition: edition}.Key()

	if componentsRaw == "" {
		if existing, ok := r.byKey[key]; ok {
			return existing, nil
		}
		action := model.Action{Name: name, Edition: edition}
		r.byKey[key] = action
		return action, nil
	}

	components, err := parseComponents(componentsRaw)
	if err != nil {
		return model.Action{}, err
	}

	if existing, ok := r.byKey[key]; ok {
		if !sameComponents(existing.Components, components) {
			return model.Action{}, perrors.New(perrors.CodeAmbiguousCombination,
				"action %q mentioned with inconsistent components", key)
		}
		return existing, nil
	}

	action := model.Action{Name: name, Edition: edition, Components: components}
	r.byKey[key] = action
	return action, nil
}

// parseActionRefParts splits token into name, edition (0 if absent), and
// the raw, unparsed component-list string (empty if token carries no
// combination syntax).
func parseActionRefParts(token string) (name string, edition int, componentsRaw string, err error) {
	m := actionRefPattern.FindStringSubmatch(token)
	if m == nil {
		return "", 0, "", perrors.New(perrors.CodeMalformedLine, "malformed action reference: %q", token)
	}
	name = m[1]
	if m[2] != "" {
		edition, err = strconv.Atoi(m[2])
		if err != nil {
			return "", 0, "", perrors.New(perrors.CodeMalformedLine, "malformed edition in %q", token)
		}
	}
	return name, edition, m[3], nil
}

// parseComponents splits a combination's raw component-list string on '&'
// and resolves each component to a plain (name, edition) action - per the
// grammar, a component may carry its own [k] but never its own nested
// combination.
func parseComponents(raw string) ([]model.Action, error) {
	parts := strings.Split(raw, "&")
	components := make([]model.Action, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		name, edition, nestedRaw, err := parseActionRefParts(part)
		if err != nil {
			return nil, err
		}
		if nestedRaw != "" {
			return nil, perrors.New(perrors.CodeMalformedLine,
				"combination component %q may not itself be a combination", part)
		}
		component := model.Action{Name: name, Edition: edition}
		key := component.Key()
		if seen[key] {
			return nil, perrors.New(perrors.CodeDuplicateCombinationComponent,
				"component %q named twice in the same combination", key)
		}
		seen[key] = true
		components = append(components, component)
	}
	return components, nil
}

func sameComponents(a, b []model.Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
