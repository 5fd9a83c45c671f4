// Package client implements the idea list controller: it owns the displayed
// ideas, the status message, the random panel flag and the add/update modal,
// and drives a Backend through the list refresh protocol.
//
// Modal states:
//
//	Closed --OpenForCreate--> CreatingNew
//	any    --OpenForEdit----> EditingExisting(id)
//	CreatingNew / EditingExisting --submit ok | Close--> Closed
//
// Every mutation (create, update, delete, reset) is followed by a full reload;
// the list is never patched locally.
//
// A Controller is not safe for concurrent use. Callers that run requests on
// other goroutines use the Begin*/Apply* halves and apply results from the
// goroutine that owns the Controller.
package client
