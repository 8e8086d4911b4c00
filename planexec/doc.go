// Package planexec steps a tools.PlanIntent through the sandbox validator
// one action at a time, applying accepted steps' effects to the world via
// an ecs.CommandBuffer and halting on the first rejection. A
// rejected step emits a ToolBlocked event and the remaining steps of that
// plan are discarded; accepted progress already applied is kept.
package planexec
