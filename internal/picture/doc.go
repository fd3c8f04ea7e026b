// Package picture selects, from a fixed set of image candidates, the one best
// suited to the current display context and keeps that choice current as the
// rendered size changes.
//
// # Selection Pipeline
//
// A picture instance moves through three selection steps:
//
//  1. Density resolution: the density class to target is resolved once, from
//     an explicit value or from a platform pixel-ratio signal matched against
//     the densities present in the candidate set.
//  2. Initial selection: before layout is known, a provisional candidate is
//     chosen. A vector candidate (mime "image/svg+xml") short-circuits
//     everything; otherwise the narrowest portrait-like candidate of the
//     resolved density is used.
//  3. Best-fit selection: once a rendered (width, height) is known, every
//     candidate is folded through a single comparator (density proximity,
//     then not undershooting the rendered width, then width distance, then
//     height distance).
//
// # Lifecycle
//
// Controller owns the exposed State. It is created Provisional, becomes Fitted
// at Attach (when the host surface can be measured) and refits on every resize
// report until Detach. Vector instances stay Provisional and never subscribe
// to resize reports.
//
//	c, err := picture.New(set, picture.Options{DevicePixelRatio: 2})
//	if err != nil {
//	    return err
//	}
//	if err := c.Attach("hero", measurer); err != nil {
//	    return err
//	}
//	defer c.Detach()
//
// # Thread Safety
//
// Selection functions are pure. Controller methods are safe to call from the
// goroutine delivering resize reports while another goroutine reads State.
package picture
