// Package workflow runs the signup and signin attempts.
//
// A signup attempt is the ordered sequence create account → establish session
// → verify session; a signin attempt skips the first step. Every step is a
// remote call that can fail on its own, and a failure ends the attempt in a
// Failed state whose Reason names the step. Nothing is rolled back: an
// account created by a signup whose sign-in step failed stays in place and
// the attempt reports ReasonSignInAfterCreate so the caller can tell it apart
// from a rejected signup.
//
// The session gate has the last word. A sign-in step that reports success is
// not trusted until the gate confirms a session exists.
//
// An Engine keeps no state between attempts and may be shared. Callers that
// need "one attempt at a time" semantics (forms) enforce it themselves; see
// package presentation.
package workflow
