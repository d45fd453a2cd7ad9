// Package animate drives the living motion of a word cloud.
//
// Animation is split into a pure update and a timer:
//
//   - [Step] takes a [State] and an [Env] and returns the next State plus the
//     [Transition] commands a renderer should play to get there. It never
//     mutates its input, and all randomness is derived from Env.Seed and the
//     frame number, so equal inputs always produce equal outputs.
//   - [Animator] owns a State and calls Step on a fixed interval, handing
//     each [Frame] to a callback. It moves through Idle → Running →
//     Disposed; Disposed is terminal and [Animator.Dispose] is idempotent.
//
// [Bake] runs Step a fixed number of times without a timer; renderers use
// the resulting [Timeline] to produce self-contained animations.
package animate
