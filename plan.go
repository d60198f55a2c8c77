package hypermedia

import (
	"reflect"
	"slices"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag controlling link traversal. `hypermedia:"-"`
// excludes a field and everything beneath it.
const tagName = "hypermedia"

// linkPlan describes where links live in one resource type and which of its
// fields hold further resources.
type linkPlan struct {
	typeName string
	def      evaluator    // nil when no link is declared for the type
	field    []int        // reflect.Value.FieldByIndex path to the LinkCollection field
	linkable bool         // *T implements Linkable
	nested   []nestedPlan // fields holding resources with links somewhere beneath
	relevant bool         // links are declared or stored in this type or beneath it
}

type nestedKind int

const (
	nestedStruct nestedKind = iota
	nestedPointer
	nestedSlice
	nestedArray
	nestedMap
)

// nestedPlan describes a field holding other resource instances.
type nestedPlan struct {
	index   []int  // FieldByIndex path within the parent
	name    string // field path for diagnostics
	kind    nestedKind
	elemPtr bool // slice, array or map elements are pointers
	plan    *linkPlan
}

func (p *linkPlan) hasLinks() bool {
	return p.linkable || p.field != nil
}

// planBuilder builds plans for a type graph, sharing one plan per type so
// recursive types terminate.
type planBuilder struct {
	plans map[reflect.Type]*linkPlan
	order []*linkPlan
	defs  []evaluator
}

// buildLinkPlan returns the plan for the struct described by meta and seals
// every definition it reaches.
func buildLinkPlan(meta sentinel.Metadata) (*linkPlan, error) {
	b := &planBuilder{plans: make(map[reflect.Type]*linkPlan)}
	root := b.build(withEmbedded(meta))
	b.resolve()

	for _, p := range b.order {
		if p.def != nil && !p.hasLinks() {
			return nil, newConfigError(ErrMissingLinks, p.typeName, "")
		}
	}

	for _, def := range b.defs {
		def.seal()
	}
	return root, nil
}

func (b *planBuilder) build(meta sentinel.Metadata) *linkPlan {
	t := meta.ReflectType
	if p, ok := b.plans[t]; ok {
		return p
	}

	p := &linkPlan{
		typeName: t.String(),
		linkable: reflect.PointerTo(t).Implements(linkableType),
	}
	b.plans[t] = p
	b.order = append(b.order, p)

	if def, ok := lookupType(t); ok {
		b.defs = append(b.defs, def)
		if def.hasAny() {
			p.def = def
		}
	}
	if index, ok := linksField(meta); ok {
		p.field = index
	}

	b.collect(p, meta, nil, "")
	return p
}

// collect records nested resource fields of meta. Embedded structs
// contribute their fields to the same instance, as Go promotes them.
func (b *planBuilder) collect(p *linkPlan, meta sentinel.Metadata, prefix []int, namePrefix string) {
	for _, field := range meta.Fields {
		if skipped(field) || field.ReflectType == collectionType {
			continue
		}

		index := append(slices.Clone(prefix), field.Index...)
		name := field.Name
		if namePrefix != "" {
			name = namePrefix + "." + field.Name
		}

		if embedded(meta, field) {
			b.collect(p, scanType(field.ReflectType), index, name)
			continue
		}

		if n, ok := b.nestedFor(field); ok {
			n.index = index
			n.name = name
			p.nested = append(p.nested, n)
		}
	}
}

func (b *planBuilder) nestedFor(field sentinel.FieldMetadata) (nestedPlan, bool) {
	ft := field.ReflectType
	switch field.Kind {
	case sentinel.KindStruct:
		return nestedPlan{kind: nestedStruct, plan: b.build(scanType(ft))}, true

	case sentinel.KindPointer:
		if ft.Elem().Kind() == reflect.Struct {
			return nestedPlan{kind: nestedPointer, plan: b.build(scanType(ft.Elem()))}, true
		}

	case sentinel.KindSlice, sentinel.KindMap:
		kind := nestedSlice
		switch ft.Kind() {
		case reflect.Array:
			kind = nestedArray
		case reflect.Map:
			kind = nestedMap
		}
		et := ft.Elem()
		if et.Kind() == reflect.Struct {
			return nestedPlan{kind: kind, plan: b.build(scanType(et))}, true
		}
		if et.Kind() == reflect.Pointer && et.Elem().Kind() == reflect.Struct {
			return nestedPlan{kind: kind, elemPtr: true, plan: b.build(scanType(et.Elem()))}, true
		}
	}
	return nestedPlan{}, false
}

// resolve marks plans that declare or store links, directly or beneath, and
// prunes nested fields that lead nowhere.
func (b *planBuilder) resolve() {
	for _, p := range b.order {
		p.relevant = p.def != nil || p.hasLinks()
	}
	for changed := true; changed; {
		changed = false
		for _, p := range b.order {
			if p.relevant {
				continue
			}
			for _, n := range p.nested {
				if n.plan.relevant {
					p.relevant = true
					changed = true
					break
				}
			}
		}
	}
	for _, p := range b.order {
		p.nested = slices.DeleteFunc(p.nested, func(n nestedPlan) bool {
			return !n.plan.relevant
		})
	}
}

// scanType returns the sentinel metadata for struct type rt. Types sentinel
// has not cached, such as those outside the scanned module, are scanned
// directly with the same field layout.
func scanType(rt reflect.Type) sentinel.Metadata {
	if rt.Name() != "" {
		if meta, ok := sentinel.Lookup(rt.PkgPath() + "." + rt.Name()); ok && meta.ReflectType == rt {
			return withEmbedded(meta)
		}
	}

	meta := sentinel.Metadata{
		ReflectType: rt,
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if sf.IsExported() || hiddenEmbed(sf) {
			meta.Fields = append(meta.Fields, fieldMetadata(sf))
		}
	}
	return meta
}

// withEmbedded adds the unexported embedded structs sentinel leaves out of
// meta. Their exported fields are promoted, so links may live beneath them.
func withEmbedded(meta sentinel.Metadata) sentinel.Metadata {
	rt := meta.ReflectType
	var hidden []sentinel.FieldMetadata
	for i := range rt.NumField() {
		if sf := rt.Field(i); hiddenEmbed(sf) {
			hidden = append(hidden, fieldMetadata(sf))
		}
	}
	if len(hidden) == 0 {
		return meta
	}

	fields := append(slices.Clone(meta.Fields), hidden...)
	slices.SortStableFunc(fields, func(a, b sentinel.FieldMetadata) int {
		return slices.Compare(a.Index, b.Index)
	})
	meta.Fields = fields
	return meta
}

func hiddenEmbed(sf reflect.StructField) bool {
	return !sf.IsExported() && sf.Anonymous && sf.Type.Kind() == reflect.Struct
}

func fieldMetadata(sf reflect.StructField) sentinel.FieldMetadata {
	fm := sentinel.FieldMetadata{
		Name:        sf.Name,
		Type:        sf.Type.String(),
		ReflectType: sf.Type,
		Index:       sf.Index,
		Tags:        make(map[string]string),
	}
	if v := sf.Tag.Get(tagName); v != "" {
		fm.Tags[tagName] = v
	}

	switch sf.Type.Kind() {
	case reflect.Struct:
		fm.Kind = sentinel.KindStruct
	case reflect.Pointer:
		fm.Kind = sentinel.KindPointer
	case reflect.Slice, reflect.Array:
		fm.Kind = sentinel.KindSlice
	case reflect.Map:
		fm.Kind = sentinel.KindMap
	case reflect.Interface:
		fm.Kind = sentinel.KindInterface
	default:
		fm.Kind = sentinel.KindScalar
	}
	return fm
}

// skipped reports whether the field carries `hypermedia:"-"`.
func skipped(field sentinel.FieldMetadata) bool {
	return field.Tags[tagName] == "-"
}

// embedded reports whether field is an embedded struct of meta's type.
func embedded(meta sentinel.Metadata, field sentinel.FieldMetadata) bool {
	return field.Kind == sentinel.KindStruct && meta.ReflectType.FieldByIndex(field.Index).Anonymous
}

// findLinksField returns the path to the shallowest exported LinkCollection
// field of t, looking through embedded structs.
func findLinksField(t reflect.Type) ([]int, bool) {
	return linksField(scanType(t))
}

func linksField(meta sentinel.Metadata) ([]int, bool) {
	type level struct {
		meta  sentinel.Metadata
		index []int
	}

	queue := []level{{meta: meta}}
	for len(queue) > 0 {
		var next []level
		for _, l := range queue {
			for _, field := range l.meta.Fields {
				if skipped(field) {
					continue
				}
				index := append(slices.Clone(l.index), field.Index...)
				if field.ReflectType == collectionType {
					return index, true
				}
				if embedded(l.meta, field) {
					next = append(next, level{meta: scanType(field.ReflectType), index: index})
				}
			}
		}
		queue = next
	}
	return nil, false
}

// undeclared reports whether any type reachable from p stores links without declaring any.
func (p *linkPlan) undeclared(seen map[*linkPlan]bool) bool {
	if seen[p] {
		return false
	}
	seen[p] = true
	if p.def == nil && p.hasLinks() {
		return true
	}
	for _, n := range p.nested {
		if n.plan.undeclared(seen) {
			return true
		}
	}
	return false
}

// store writes links onto the instance rv, which must be addressable.
func (p *linkPlan) store(rv reflect.Value, links LinkCollection) {
	if p.linkable {
		rv.Addr().Interface().(Linkable).SetHyperlinks(links)
		return
	}
	rv.FieldByIndex(p.field).Set(reflect.ValueOf(links))
}

// evaluation gathers the writes of one evaluate call. Nothing is written
// until every href in the graph has been computed.
type evaluation struct {
	writes []func()
	count  int
}

// evaluate computes links for rv and every nested instance and stores them,
// returning how many links were stored. On error no instance is modified.
func (p *linkPlan) evaluate(rv reflect.Value) (int, error) {
	var ev evaluation
	if err := p.compute(rv, &ev); err != nil {
		return 0, err
	}
	for _, write := range ev.writes {
		write()
	}
	return ev.count, nil
}

func (p *linkPlan) compute(rv reflect.Value, ev *evaluation) error {
	if p.def != nil {
		links, err := p.def.evaluateValue(rv)
		if err != nil {
			return err
		}
		ev.writes = append(ev.writes, func() { p.store(rv, links) })
		ev.count += links.Len()
	}

	for _, n := range p.nested {
		if err := n.compute(rv, ev); err != nil {
			return err
		}
	}
	return nil
}

// compute evaluates each non-nil instance held by the nested field of rv.
func (n nestedPlan) compute(rv reflect.Value, ev *evaluation) error {
	field := rv.FieldByIndex(n.index)
	switch n.kind {
	case nestedStruct:
		return n.plan.compute(field, ev)

	case nestedPointer:
		if field.IsNil() {
			return nil
		}
		return n.plan.compute(field.Elem(), ev)

	case nestedMap:
		iter := field.MapRange()
		for iter.Next() {
			elem := iter.Value()
			if n.elemPtr {
				if elem.IsNil() {
					continue
				}
				if err := n.plan.compute(elem.Elem(), ev); err != nil {
					return err
				}
				continue
			}

			// Map values are not addressable: evaluate a copy and put it back.
			key := iter.Key()
			cp := reflect.New(elem.Type()).Elem()
			cp.Set(elem)
			if err := n.plan.compute(cp, ev); err != nil {
				return err
			}
			ev.writes = append(ev.writes, func() { field.SetMapIndex(key, cp) })
		}

	default:
		for i := range field.Len() {
			elem := field.Index(i)
			if n.elemPtr {
				if elem.IsNil() {
					continue
				}
				elem = elem.Elem()
			}
			if err := n.plan.compute(elem, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// strip clears links that must not render from the render copy rooted at rv.
// With all set every links attribute is cleared, otherwise only those of
// types that declare no links. Pointees, slices and maps are copied before
// being written, so values shared with the caller are left untouched.
func (p *linkPlan) strip(rv reflect.Value, all bool) {
	if p.hasLinks() && (all || p.def == nil) {
		p.store(rv, LinkCollection{})
	}

	for _, n := range p.nested {
		field := rv.FieldByIndex(n.index)
		switch n.kind {
		case nestedStruct:
			n.plan.strip(field, all)

		case nestedPointer:
			if !field.IsNil() {
				field.Set(copyPointer(field))
				n.plan.strip(field.Elem(), all)
			}

		case nestedMap:
			if field.IsNil() {
				continue
			}
			cp := reflect.MakeMapWithSize(field.Type(), field.Len())
			iter := field.MapRange()
			for iter.Next() {
				elem := iter.Value()
				if n.elemPtr {
					if !elem.IsNil() {
						elem = copyPointer(elem)
						n.plan.strip(elem.Elem(), all)
					}
				} else {
					v := reflect.New(elem.Type()).Elem()
					v.Set(elem)
					n.plan.strip(v, all)
					elem = v
				}
				cp.SetMapIndex(iter.Key(), elem)
			}
			field.Set(cp)

		default:
			if n.kind == nestedSlice && field.Len() > 0 {
				cp := reflect.MakeSlice(field.Type(), field.Len(), field.Len())
				reflect.Copy(cp, field)
				field.Set(cp)
			}
			for i := range field.Len() {
				elem := field.Index(i)
				if n.elemPtr {
					if elem.IsNil() {
						continue
					}
					elem.Set(copyPointer(elem))
					elem = elem.Elem()
				}
				n.plan.strip(elem, all)
			}
		}
	}
}

// copyPointer returns a pointer to a shallow copy of ptr's target.
func copyPointer(ptr reflect.Value) reflect.Value {
	cp := reflect.New(ptr.Type().Elem())
	cp.Elem().Set(ptr.Elem())
	return cp
}
