package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/ordmap/arena"

// Set algebra walks both chains in parallel, so it requires both sets to
// be ordered by equivalent comparators.

// Union adds all keys of other to s.
func (s *Set[K]) Union(other *Set[K]) error {
	if s == other {
		return nil
	}
	a, b := s.tree.Min(), other.tree.Min()
	for b != arena.Nil {
		if a == arena.Nil {
			if _, err := s.tree.Insert(*other.tree.Data(b)); err != nil {
				return err
			}
			b = other.tree.Next(b)
			continue
		}
		switch c := s.cmp(*s.tree.Data(a), *other.tree.Data(b)); {
		case c < 0:
			a = s.tree.Next(a)
		case c > 0:
			// insertion never moves payloads, a stays put
			if _, err := s.tree.Insert(*other.tree.Data(b)); err != nil {
				return err
			}
			b = other.tree.Next(b)
		default:
			a, b = s.tree.Next(a), other.tree.Next(b)
		}
	}
	return nil
}

// Intersect removes all keys from s which are not in other.
func (s *Set[K]) Intersect(other *Set[K]) {
	if s == other {
		return
	}
	a, b := s.tree.Min(), other.tree.Min()
	for a != arena.Nil && b != arena.Nil {
		switch c := s.cmp(*s.tree.Data(a), *other.tree.Data(b)); {
		case c < 0:
			a = s.tree.RemoveNext(a)
		case c > 0:
			b = other.tree.Next(b)
		default:
			a, b = s.tree.Next(a), other.tree.Next(b)
		}
	}
	for a != arena.Nil {
		a = s.tree.RemoveNext(a)
	}
}

// Subtract removes all keys from s which are in other.
func (s *Set[K]) Subtract(other *Set[K]) {
	if s == other {
		s.Clear()
		return
	}
	a, b := s.tree.Min(), other.tree.Min()
	for a != arena.Nil && b != arena.Nil {
		switch c := s.cmp(*s.tree.Data(a), *other.tree.Data(b)); {
		case c < 0:
			a = s.tree.Next(a)
		case c > 0:
			b = other.tree.Next(b)
		default:
			a, b = s.tree.RemoveNext(a), other.tree.Next(b)
		}
	}
}

// Equal reports whether s and other hold the same keys.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.tree.Min(), other.tree.Min()
	for ; a != arena.Nil && b != arena.Nil; a, b = s.tree.Next(a), other.tree.Next(b) {
		if s.cmp(*s.tree.Data(a), *other.tree.Data(b)) != 0 {
			return false
		}
	}
	return a == arena.Nil && b == arena.Nil
}

// SubsetOf reports whether every key of s is in other.
func (s *Set[K]) SubsetOf(other *Set[K]) bool {
	a, b := s.tree.Min(), other.tree.Min()
	for a != arena.Nil && b != arena.Nil {
		switch c := s.cmp(*s.tree.Data(a), *other.tree.Data(b)); {
		case c < 0:
			return false
		case c > 0:
			b = other.tree.Next(b)
		default:
			a, b = s.tree.Next(a), other.tree.Next(b)
		}
	}
	return a == arena.Nil
}

// SupersetOf reports whether every key of other is in s.
func (s *Set[K]) SupersetOf(other *Set[K]) bool {
	return other.SubsetOf(s)
}

// ProperSubsetOf reports whether s is a subset of other and other holds at
// least one key not in s.
func (s *Set[K]) ProperSubsetOf(other *Set[K]) bool {
	return s.Len() < other.Len() && s.SubsetOf(other)
}

// ProperSupersetOf reports whether other is a proper subset of s.
func (s *Set[K]) ProperSupersetOf(other *Set[K]) bool {
	return other.ProperSubsetOf(s)
}
