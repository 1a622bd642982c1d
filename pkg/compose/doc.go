// Package compose implements the deterministic poster-composition pipeline.
//
// # Overview
//
// Given a brand visual configuration, a headline, and an optional content
// image, the pipeline produces a final raster poster in four stages:
//
//  1. Plan: [BuildStylePlan] deterministically picks a layout template,
//     density, alignment, and background mode from seeded hashes.
//  2. Layout: [ComputeLayout] maps the plan onto absolute pixel zones for
//     the image, text, and logo layers.
//  3. Paint: four fixed layers draw in z-order — background graphics,
//     cover-fit content image, logo, wrapped headline text.
//  4. Encode: the canvas is encoded as PNG.
//
// # Determinism
//
// Style planning and layout geometry are pure functions: identical inputs
// always yield identical outputs. "Randomness" is a salted FNV-1a hash of
// the seed (or topic) string, so a rejected poster can be regenerated
// exactly and batch variants are debuggable. Each selection axis uses an
// independently salted seed, so reweighting one axis never perturbs another.
//
// # Drawing surface
//
// Layers draw against the minimal [Surface] interface rather than a concrete
// rasterizer. The default implementation ([NewCanvas]) is backed by
// github.com/fogleman/gg; the layout math is rasterizer-agnostic.
package compose
