// Package arr defines the method name tokens used as error prefixes.
package arr

const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodTryBuild is the canonical name for TryBuild.
	MethodTryBuild = "TryBuild"
	// MethodMake is the canonical name for Make.
	MethodMake = "Make"
	// MethodTryMake is the canonical name for TryMake.
	MethodTryMake = "TryMake"
	// MethodFill is the canonical name for Fill.
	MethodFill = "Fill"
	// MethodTryFill is the canonical name for TryFill.
	MethodTryFill = "TryFill"
)
