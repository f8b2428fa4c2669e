package staticvec

// Clone returns a copy of v. The storage block is copied as a whole, which for a mostly
// full Vector is cheaper than walking the elements.
func (v *Vector[T, S]) Clone() Vector[T, S] {
	return *v
}

// Assign makes v an element-wise copy of src.
//
// The common prefix is overwritten in place, then the remainder of src is appended or the
// surplus of v released. Work is proportional to the larger length, not the capacity.
func (v *Vector[T, S]) Assign(src *Vector[T, S]) {
	if v == src {
		return
	}
	dst, from := v.cells(), src.cells()
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		*dst[i].Value() = from[i].Get()
	}
	if src.size <= v.size {
		v.ShrinkTo(src.size)
		return
	}
	for i := v.size; i < src.size; i++ {
		dst[i].Put(from[i].Get())
	}
	v.size = src.size
}

// AssignValues makes v hold exactly xs. If xs does not fit, v is left unchanged.
func (v *Vector[T, S]) AssignValues(xs ...T) error {
	if len(xs) > len(v.store) {
		return capacityError(len(xs), len(v.store))
	}
	dst := v.cells()
	n := min(v.size, len(xs))
	for i := 0; i < n; i++ {
		*dst[i].Value() = xs[i]
	}
	if len(xs) <= v.size {
		v.ShrinkTo(len(xs))
		return nil
	}
	for i := v.size; i < len(xs); i++ {
		dst[i].Put(xs[i])
	}
	v.size = len(xs)
	return nil
}

// AssignFunc makes v a copy of src using clone to copy each element.
//
// The copy is built in a temporary Vector and moved into v only once every clone call has
// succeeded, so a failing clone leaves v untouched.
func (v *Vector[T, S]) AssignFunc(src *Vector[T, S], clone func(dst *T, src T) error) error {
	var tmp Vector[T, S]
	for _, c := range src.live() {
		x := c.Get()
		if _, err := tmp.EmplaceBack(func(p *T) error { return clone(p, x) }); err != nil {
			return err
		}
	}
	v.MoveFrom(&tmp)
	return nil
}

// MoveFrom transfers the elements of src into v element-wise and leaves src empty.
func (v *Vector[T, S]) MoveFrom(src *Vector[T, S]) {
	if v == src {
		return
	}
	dst, from := v.cells(), src.cells()
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		*dst[i].Value() = from[i].Take()
	}
	if src.size <= v.size {
		v.ShrinkTo(src.size)
	} else {
		for i := v.size; i < src.size; i++ {
			dst[i].Put(from[i].Take())
		}
		v.size = src.size
	}
	src.Clear()
}

// Swap exchanges the contents of v and other.
func (v *Vector[T, S]) Swap(other *Vector[T, S]) {
	*v, *other = *other, *v
}
