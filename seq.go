package localized

import (
	"context"
	"iter"
	"slices"

	"golang.org/x/sync/errgroup"
)

// LocalizeSeq returns a lazy sequence that resolves each item right before
// yielding it. Iteration stops after the first error, which is yielded
// together with the failing item.
//
// Example:
//
//	for planet, err := range localized.LocalizeSeq(l, slices.Values(planets), "ar", localized.Shallow) {
//	    if err != nil {
//	        return err
//	    }
//	    render(planet)
//	}
func LocalizeSeq[T any](l *Localizer, items iter.Seq[T], language string, depth Depth) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item := range items {
			err := l.Localize(item, language, depth)
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// LocalizeSlice is LocalizeSeq over a slice.
func LocalizeSlice[T any](l *Localizer, items []T, language string, depth Depth) iter.Seq2[T, error] {
	return LocalizeSeq(l, slices.Values(items), language, depth)
}

// LocalizeFieldsSeq returns a lazy sequence applying LocalizeFields to each item.
func LocalizeFieldsSeq[T any](l *Localizer, items iter.Seq[T], language string, selectors ...Selector[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item := range items {
			resolved, err := LocalizeFields(l, item, language, selectors...)
			if !yield(resolved, err) || err != nil {
				return
			}
		}
	}
}

// LocalizeConcurrent resolves items in parallel, at most limit at a time.
// A limit of zero or less means no limit. Items must be independent graphs:
// entities shared between items are modified concurrently.
// Returns the first error; items not yet started are skipped once an error
// occurs or ctx is done. Cancelling ctx after every item has been resolved
// is not an error.
func LocalizeConcurrent[T any](ctx context.Context, l *Localizer, items []T, language string, depth Depth, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	skipped := false
	for _, item := range items {
		if gctx.Err() != nil {
			skipped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return l.Localize(item, language, depth)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if skipped {
		return ctx.Err()
	}

	return nil
}
