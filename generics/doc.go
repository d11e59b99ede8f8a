// Package generics contains the lessons on parameterized types
// (items 23-29). The raw-type lessons translate to `any` plus type
// assertions: everything that compiles with interface{} compiles, and
// everything wrong about it surfaces at run time. Type parameters move the
// failure to the compiler, which is the whole chapter in one sentence.
package generics
