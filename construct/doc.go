// Package construct contains the lessons on creating and destroying values
// (items 1-7).
//
// The progression:
//
//   - item 1: named constructor functions and a provider registry instead of bare struct literals
//   - item 2: builders and functional options when a constructor takes too many parameters
//   - item 3: package-level singletons with sync.Once
//   - item 4: noninstantiable helper types
//   - item 5: avoiding needless allocation (hoist compiled state out of hot paths)
//   - item 6: obsolete references inside self-managed storage
//   - item 7: explicit Close over finalizers
package construct
