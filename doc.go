package docport

// Package docport provides:
//
// - A uniform read/write surface (Adapter/MutableAdapter) over tree-shaped,
//   JSON-like documents held by otherwise incompatible libraries
// - Iterator bridges (ArrayView/ObjectView) so arrays and objects of any
//   backend can be walked the same way
// - Frozen snapshots (Freeze/Frozen) that detach a value from its source
//   document's lifetime and re-materialize into any mutable backend
// - Cross-backend value transfer (Assign/CreateKey/Resize) used by
//   validation engines to inject schema-declared defaults
//
// Design policy:
// - Keep only public APIs in the root package; concrete backends live under
//   backend/, the default-population engine under defaults/, and the CLI
//   under cmd/docport.
// - Capability is a property of the static type: read-only adapters expose
//   no mutating methods, so misuse does not compile. Assign, CreateKey and
//   Resize are the only operations that decide writability, and they are
//   guaranteed no-ops on read-only destinations.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  schema, err := gomap.FromJSON(schemaBytes)
//  doc, err := yamlnode.FromYAML(docBytes)
//
//  set, err := defaults.Extract(schema)
//  applied := set.Apply(doc)
//
//  snap := docport.Freeze(doc)          // outlives the document
//  same := docport.Equal(schema, doc, false)
