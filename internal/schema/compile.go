package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/NestorMonroy/svgo/internal/collections"
	"github.com/NestorMonroy/svgo/internal/groupwalk"
)

// Compile expands every element definition of base into a resolved Element.
// Local attributes and content come first, followed by each referenced group
// in reference order. Group defaults overwrite local defaults, and a later
// group overwrites an earlier one for the same attribute. base is not modified.
func Compile(base *collections.Base) (*Schema, error) {
	if base == nil {
		return nil, fmt.Errorf("compile schema: nil knowledge base")
	}

	s := &Schema{
		elements:    make(map[string]*Element, len(base.Elements)),
		inheritable: newNameSet(base.Inheritable),
		applyExempt: newNameSet(base.PresentationNonInheritable),
	}

	for _, name := range slices.Sorted(maps.Keys(base.Elements)) {
		elem, err := compileElement(name, base.Elements[name], base)
		if err != nil {
			return nil, fmt.Errorf("compile schema: element %s: %w", name, err)
		}
		s.elements[name] = elem
	}
	return s, nil
}

// MustCompile is like Compile but panics on a knowledge base defect.
func MustCompile(base *collections.Base) *Schema {
	s, err := Compile(base)
	if err != nil {
		panic(err)
	}
	return s
}

func compileElement(name string, def collections.ElementDef, base *collections.Base) (*Element, error) {
	elem := &Element{name: name}

	if len(def.Attrs) > 0 || len(def.AttrGroups) > 0 {
		attrs := newOrderedSet(def.Attrs)
		defaults := maps.Clone(def.Defaults)

		err := groupwalk.Walk(base.AttrGroups, def.AttrGroups, groupwalk.Options{
			Kind:       groupwalk.KindAttribute,
			Missing:    groupwalk.MissingError,
			Duplicates: groupwalk.DuplicateVisit,
		}, func(group string, members []string) error {
			attrs.add(members...)
			groupDefaults := base.AttrGroupDefaults[group]
			if len(groupDefaults) == 0 {
				return nil
			}
			if defaults == nil {
				defaults = make(map[string]string, len(groupDefaults))
			}
			// Sorted iteration keeps the result independent of map order;
			// keys within one group never collide.
			for _, attr := range slices.Sorted(maps.Keys(groupDefaults)) {
				defaults[attr] = groupDefaults[attr]
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		elem.attrs = attrs
		if len(defaults) > 0 {
			elem.defaults = defaults
		}
	} else if len(def.Defaults) > 0 {
		elem.defaults = maps.Clone(def.Defaults)
	}

	if def.Content != nil || len(def.ContentGroups) > 0 {
		var local []string
		if def.Content != nil {
			local = *def.Content
		}
		content := newOrderedSet(local)

		err := groupwalk.Walk(base.ContentGroups, def.ContentGroups, groupwalk.Options{
			Kind:    groupwalk.KindContent,
			Missing: groupwalk.MissingError,
		}, func(_ string, members []string) error {
			content.add(members...)
			return nil
		})
		if err != nil {
			return nil, err
		}
		elem.content = content
	}

	return elem, nil
}
