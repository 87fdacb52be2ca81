package parse

import "github.com/jmgilman/go/gitcli/progress"

// Shared parser instances. All parsers are stateless and safe to share.
var (
	Receiving   = NewPhaseParser("Receiving objects")
	Resolving   = NewPhaseParser("Resolving deltas")
	Writing     = NewPhaseParser("Writing objects")
	Compressing = NewPhaseParser("Compressing objects")
	Counting    = NewPhaseParser("Counting objects")
	Enumerating = NewPhaseParser("Enumerating objects")
	Updating    = NewPhaseParser("Updating files")
	CheckingOut = NewPhaseParser("Checking out files")

	RemoteProgress Parser = RemoteProgressParser{}
	RemoteMessage         = NewMessageParser(remotePrefix, progress.Remote)
	HintMessage           = NewMessageParser("hint: ", progress.Hint)
	Ambiguous      Parser = AmbiguousReferenceParser{}
	WarningError   Parser = WarningErrorParser{}

	// PlainWarning catches capitalized warnings from helpers such as ssh.
	PlainWarning = NewMessageParser("Warning: ", progress.Warning)
)

// Network returns the chain for clone, fetch, pull and push.
func Network() Chain {
	return Chain{
		Receiving,
		Resolving,
		Writing,
		Compressing,
		Counting,
		Enumerating,
		RemoteProgress,
		RemoteMessage,
		CheckingOut,
		Updating,
		HintMessage,
		Ambiguous,
		WarningError,
		PlainWarning,
	}
}

// Local returns the chain for operations that only touch the work tree.
func Local() Chain {
	return Chain{
		Updating,
		HintMessage,
		Ambiguous,
		WarningError,
		PlainWarning,
	}
}

// Submodule returns the chain for submodule update.
func Submodule() Chain {
	return Chain{
		SubmoduleRegisteredParser{},
		SubmoduleCheckedOutParser{},
		SubmoduleNotInitialized,
		SubmoduleRevisionNotFound,
		SubmoduleCheckoutFailed,
		SubmoduleUnmerged,
		SubmoduleFetchFailed,
		SubmoduleRecurseFailed,
		SubmoduleUpdateFailed,
		SubmoduleCommandFailed,
		Receiving,
		Resolving,
		RemoteProgress,
		RemoteMessage,
		HintMessage,
		WarningError,
		PlainWarning,
	}
}
