// Package contain decides, for a pair of directed graphs given as
// adjacency matrices, whether one is structurally contained in the
// other, and which of the two matrices is worth retaining.
//
// 🚀 What does it decide?
//
//	Compare(A, B) runs the signature pipeline in both directions:
//	each matrix is encoded into its column-signature sequence
//	(package signature), then rotation.Contains asks whether A's
//	sequence occurs in B's and vice versa. The four outcomes map to:
//
//	  A in B and B in A → structurally equal; the edge counts break
//	                      the tie (EqualPrefersB when B has strictly
//	                      more edges, EqualPrefersA otherwise)
//	  only A in B       → PrefersB: B subsumes A, retain B
//	  only B in A       → PrefersA: A subsumes B, retain A
//	  neither           → Neither: no verdict, no matrix retained
//
//	CompareExact(A, B) answers the stricter label-aligned question via
//	package adjlist: every edge of one matrix must literally appear in
//	the other, node for node. No rotations, no tie-break, and unequal
//	node counts are an error rather than a verdict.
//
// ✨ Key features:
//   - both directions checked in one call, verdict plus retained matrix
//   - functional options: WithContext for cancellation, WithMinRun for
//     the window acceptance threshold
//   - AnalyzeComplexity reports the step counts behind the cubic bound,
//     including why the rotation count stays linear instead of factorial
//
// ⚙️ Usage:
//
//	verdict, kept, err := contain.Compare(a, b)
//	switch verdict {
//	case contain.PrefersB, contain.EqualPrefersB:
//	    // kept == b
//	case contain.PrefersA, contain.EqualPrefersA:
//	    // kept == a
//	case contain.Neither:
//	    // kept == nil
//	}
//
// Determinism: verdicts depend only on the two matrices and the
// options; repeated calls agree.
//
// Errors: matrix sentinels for nil/non-square input (and shape mismatch
// in CompareExact), ErrOptionViolation for bad options, context errors
// on cancellation. The retained matrix aliases the winning input; clone
// it before mutating when the originals must stay pristine.
package contain
