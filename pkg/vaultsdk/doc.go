/*
Package vaultsdk is the client SDK and wire types of the SecureFile Edu
service.

The server uses the response types and APIError from this package to write
its JSON bodies, so the SDK and the handlers cannot drift apart.

# SDKClient vs Session

  - SDKClient: health probes and the two-step sign-in flow
  - Session: everything behind the session token

Sign in with the demo authenticator code:

	client := vaultsdk.NewSDKClient("http://localhost:8080")
	session, err := client.Login(ctx, "student", "anything")

	files, err := session.ListFiles(ctx, vaultsdk.FileFilter{Query: "report"})
	events, err := session.Events(ctx, "threat")

# Errors

Every non-2xx response is returned as an *APIError, which matches the
predefined errors by code:

	if errors.Is(err, vaultsdk.ErrNotFound) {
		// ...
	}
*/
package vaultsdk
