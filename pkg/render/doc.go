// Package render generates photorealistic interior images from kitchen
// designs through an external image provider.
//
// # Pipeline
//
// A design document becomes a rendering prompt deterministically
// (BuildKitchenPrompt), optionally passes through a prompt enhancer
// (currently disabled, pass-through), and is submitted to a Leonardo-style
// generation API: create a job, poll it on a fixed interval until it
// completes, fails, or the overall deadline passes.
//
// Provider failures map to 502 and the poll deadline to 504 via the
// pkg/apperr taxonomy. Variant generation additionally renders extra
// camera angles per variant; a failed secondary angle is dropped rather
// than failing the variant, so partial results still reach the client.
package render
