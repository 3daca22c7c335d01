// Package plan provides the planning pipeline that turns analyzed types
// and a manifest into a MaskPlan consumed by code generation.
//
// Planning pipeline:
//  1. Analyze packages → type graph
//  2. Load YAML manifest → validate
//  3. For each requested record type:
//     - Classify every field into a mask slot (flag, nested mask,
//       optionally Option-wrapped) or reject it with a diagnostic
//     - Pull nested record types into the plan implicitly
//     - Reject recursive record shapes (the mask struct would be
//       infinite)
//  4. Order the plan dependency-first (deterministic topological order)
package plan
