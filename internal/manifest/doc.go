// Package manifest loads picture definitions from YAML (or JSON) files and
// fills in missing candidate metadata by probing local image files.
//
// # File Format
//
//	alt: Team photo
//	class_name: [hero, rounded]
//	item_prop: image
//	device_pixel_ratio: 2
//	sources:
//	  - url: https://cdn.example.com/team-896.jpg
//	    path: renditions/team-896.jpg   # optional, probed for width/height
//	    dppx: 1
//	  - url: https://cdn.example.com/team-1792.jpg
//	    width: 896
//	    height: 504
//	    dppx: 2
//
// class_name accepts a single string or a list. Relative paths are resolved
// against the manifest's directory.
//
// # Probing
//
// Prober decodes local files with github.com/disintegration/imaging (PNG,
// JPEG, GIF, BMP, TIFF, and WebP through golang.org/x/image) and caches the
// dimensions by path. Files ending in .svg are marked as vector candidates
// instead of being decoded. Probing runs concurrently with a bounded number of
// workers.
package manifest
