package pyramid

import "github.com/gocellmap/cellmap/euler"

// applyOp dispatches one Operation against k, recursing into a
// composite's children in order. It is the sole place that knows how
// an OpKind maps back onto a Kernel call.
func applyOp(k *euler.Kernel, op Operation) error {
	switch op.Kind {
	case OpRemoveIsolatedNode:
		return k.RemoveIsolatedNode(op.Arg)
	case OpMergeEdges:
		_, err := k.MergeEdges(op.Arg)

		return err
	case OpRemoveBridge:
		_, err := k.RemoveBridge(op.Arg)

		return err
	case OpMergeFaces:
		_, err := k.MergeFaces(op.Arg)

		return err
	case OpComposite:
		for _, child := range op.Children {
			if err := applyOp(k, child); err != nil {
				return err
			}
		}

		return nil
	default:
		return ErrUnknownOperation
	}
}

// replay applies ops in order against m via a fresh Kernel, stopping
// at the first error. It returns the number of top-level ops (not
// counting a composite's children individually) that were applied
// before either exhausting ops or hitting an error.
func replay(k *euler.Kernel, ops []Operation) (applied int, err error) {
	for i, op := range ops {
		if err := applyOp(k, op); err != nil {
			return i, err
		}
		applied = i + 1
	}

	return applied, nil
}
