// Package pkg provides the core libraries for anchorkit layout resolution.
//
// # Overview
//
// Anchorkit turns relative layout descriptions into absolute pixel geometry
// and back again without drift. The pkg directory is organized into five
// main areas:
//
//  1. [layout] - The resolution engine (units, anchors, containment, rewrites)
//  2. [document] - The persisted document format and its validation
//  3. [render] - Artifact generation (SVG, JSON, Graphviz trees)
//  4. [pipeline] - Orchestration (resolve → render, with caching)
//  5. [store] / [cache] - Persistence and content-addressed caching
//
// # Architecture
//
// The typical data flow through anchorkit:
//
//	Layout Document (JSON)
//	         ↓
//	    [document] package (validate, convert to engine form)
//	         ↓
//	    [layout] package (resolve geometry + containment hierarchy)
//	         ↓
//	    [render] package (SVG / JSON / DOT artifacts)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
// Resolve a document and render it:
//
//	import (
//	    "github.com/anchorkit/anchorkit/pkg/document"
//	    "github.com/anchorkit/anchorkit/pkg/render"
//	)
//
//	// 1. Load the document
//	doc, _ := document.ImportFile("page.json")
//
//	// 2. Resolve geometry and containment
//	resolved := doc.Resolve()
//
//	// 3. Render to SVG
//	svg := render.SVG(resolved, doc.Viewport, render.WithLabels())
//
// # Main Packages
//
// ## Engine
//
// [layout] - The resolution engine. Converts unit values (px, pw, ph, vw,
// vh) and anchors (left, center, right, top, bottom) into absolute pixel
// rectangles, derives the parent hierarchy from geometric containment, and
// rewrites descriptions between units and anchors without moving elements.
//
// [document] - Wire format for layout documents: JSON serialization,
// token validation, and the bridge between persisted elements and engine
// configs.
//
// ## Rendering & Orchestration
//
// [render] - SVG drawings of resolved boxes, JSON exports, and Graphviz
// containment trees.
//
// [pipeline] - The resolve and render stages behind the CLI and the HTTP
// API, with content-addressed caching of both.
//
// ## Infrastructure
//
// [store] - Document persistence: memory, file, Redis, and MongoDB
// backends.
//
// [cache] - Content-addressed caching of resolutions and artifacts.
//
// [client] - HTTP client for the anchorkit API with retry support.
package pkg
