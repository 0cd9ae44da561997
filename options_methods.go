package svgo

// WithUnknownContent controls pruning of children the content model does not permit.
func (o Options) WithUnknownContent(value bool) Options {
	o.UnknownContent = value
	return o
}

// WithUnknownAttrs controls removal of attributes the element does not know.
func (o Options) WithUnknownAttrs(value bool) Options {
	o.UnknownAttrs = value
	return o
}

// WithDefaultAttrs controls removal of attributes equal to their default.
func (o Options) WithDefaultAttrs(value bool) Options {
	o.DefaultAttrs = value
	return o
}

// WithUselessOverrides controls removal of inheritable attributes equal to the inherited value.
func (o Options) WithUselessOverrides(value bool) Options {
	o.UselessOverrides = value
	return o
}

// WithKeepDataAttrs controls whether data-* attributes are always kept.
func (o Options) WithKeepDataAttrs(value bool) Options {
	o.KeepDataAttrs = value
	return o
}

// WithKeepAriaAttrs controls whether aria-* attributes are always kept.
func (o Options) WithKeepAriaAttrs(value bool) Options {
	o.KeepAriaAttrs = value
	return o
}

// WithKeepRoleAttr controls whether the role attribute is always kept.
func (o Options) WithKeepRoleAttr(value bool) Options {
	o.KeepRoleAttr = value
	return o
}
