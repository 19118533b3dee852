package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// TransferToken transfers amount of NEP-17 token from the executing contract
// account to the given account and returns the result of the token transfer.
func TransferToken(token, to interop.Hash160, amount int) bool {
	from := runtime.GetExecutingScriptHash()
	return contract.Call(token, "transfer", contract.All, from, to, amount, nil).(bool)
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
