package coord

import "errors"

// ErrInvalidCoordinate is returned when a permutation cannot be ranked
// against its expected alphabet, or when a computed rank falls outside
// the coordinate's valid range. This should never happen for a cube
// reached by applying moves to a solved cube; it guards against a
// corrupted piece array the way the reference implementation's
// encode_perm guards with std::out_of_range / std::invalid_argument.
var ErrInvalidCoordinate = errors.New("cubesolver: invalid coordinate")
