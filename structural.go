package stylec

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// serializeDecls resolves a flat declaration list into "prop:value" text.
// Conditions are not allowed inside structural blocks; nil values drop the
// declaration.
func serializeDecls(decls []Declaration) (string, error) {
	var parts []string
	for _, d := range decls {
		prop := dashed(d.Property)
		if _, isCond := d.Value.(Cond); isCond {
			return "", newConfigError("conditional value for %q: conditions are not supported inside keyframes, position-try or view-transition blocks", prop)
		}
		values, ok := resolveScalar(prop, d.Value)
		if !ok {
			continue
		}
		for _, v := range values {
			parts = append(parts, prop+":"+v)
		}
	}
	return strings.Join(parts, ";"), nil
}

// compileKeyframes compiles an @keyframes declaration. The generated name
// is a content hash of the serialized frames with the reference scheme's
// "-B" suffix, so identical animations collapse to one block.
func (c *Compiler) compileKeyframes(moduleID string, kf KeyframesDecl) error {
	key := moduleID + "." + kf.Name

	var body strings.Builder
	for _, frame := range kf.Frames {
		text, err := serializeDecls(frame.Decls)
		if err != nil {
			return fmt.Errorf("keyframes %s frame %q: %w", key, frame.Key, err)
		}
		body.WriteString(frame.Key)
		body.WriteString("{")
		body.WriteString(text)
		body.WriteString("}")
	}

	name := c.opts.classPrefix() + Hash("@keyframes "+body.String()) + "-B"
	meta := &KeyframesMeta{
		Key:      key,
		Name:     name,
		LTR:      "@keyframes " + name + "{" + body.String() + "}",
		Priority: 1,
	}

	c.manifest.Keyframes[key] = meta
	c.log.Debug("compiled keyframes", zap.String("key", key), zap.String("name", name))
	return nil
}

// compilePositionTry compiles an @position-try declaration. The generated
// name is a dashed-ident as the at-rule requires.
func (c *Compiler) compilePositionTry(moduleID string, pt PositionTryDecl) error {
	key := moduleID + "." + pt.Name

	text, err := serializeDecls(pt.Decls)
	if err != nil {
		return fmt.Errorf("position-try %s: %w", key, err)
	}

	name := "--" + Hash("@position-try "+text)
	meta := &PositionTryMeta{
		Key:      key,
		Name:     name,
		LTR:      "@position-try " + name + "{" + text + "}",
		Priority: 1,
	}

	c.manifest.PositionTry[key] = meta
	c.log.Debug("compiled position-try", zap.String("key", key), zap.String("name", name))
	return nil
}

// viewTransitionParts maps declaration part names to the pseudo-element
// each one styles.
var viewTransitionParts = map[string]string{
	"group":     "::view-transition-group",
	"imagePair": "::view-transition-image-pair",
	"old":       "::view-transition-old",
	"new":       "::view-transition-new",
}

// viewTransitionPartOrder fixes the output order of the pseudo blocks.
var viewTransitionPartOrder = []string{"group", "imagePair", "old", "new"}

// compileViewTransition compiles styles for the view-transition
// pseudo-elements of one transition class. The generated class name goes
// into view-transition-class; each part becomes one
// ::view-transition-*(*.class) rule.
func (c *Compiler) compileViewTransition(moduleID string, vt ViewTransitionDecl) error {
	key := moduleID + "." + vt.Name

	texts := make(map[string]string, len(vt.Parts))
	var body strings.Builder
	for _, part := range vt.Parts {
		pseudo, ok := viewTransitionParts[part.Part]
		if !ok {
			return &ConfigError{
				Msg:  fmt.Sprintf("view transition %s: unknown part %q", key, part.Part),
				Hint: "valid parts: group, imagePair, old, new",
			}
		}
		text, err := serializeDecls(part.Decls)
		if err != nil {
			return fmt.Errorf("view transition %s part %q: %w", key, part.Part, err)
		}
		texts[part.Part] = text
		body.WriteString(pseudo)
		body.WriteString("{")
		body.WriteString(text)
		body.WriteString("}")
	}

	className := c.opts.classPrefix() + Hash("@view-transition "+body.String())

	var ltr strings.Builder
	for _, part := range viewTransitionPartOrder {
		text, ok := texts[part]
		if !ok {
			continue
		}
		ltr.WriteString(viewTransitionParts[part])
		ltr.WriteString("(*." + className + "){")
		ltr.WriteString(text)
		ltr.WriteString("}")
	}

	meta := &ViewTransitionMeta{
		Key:       key,
		ClassName: className,
		LTR:       ltr.String(),
		Priority:  1,
	}

	c.manifest.ViewTransitions[key] = meta
	c.log.Debug("compiled view transition", zap.String("key", key), zap.String("class", className))
	return nil
}
