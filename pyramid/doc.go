// Package pyramid records a sequence of Euler operations applied to a
// planar subdivision as a replayable history, with sparse checkpoints
// so any past level can be reconstructed in bounded work instead of by
// replaying from level zero every time.
//
// An Operation is either primitive — one of the four Euler kernel
// calls, carrying a serialised dart — or composite: an ordered list of
// child operations recorded between BeginComposite and EndComposite
// and replayed as a unit. A Pyramid owns the level-0 subdivision, the
// operation history, and a CheckpointStore; GetLevel(i) locates the
// nearest checkpoint at or before i, clones it, and replays the
// intervening history onto the clone.
package pyramid
