// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles admin credential checks and session tokens.

Credentials are a single configured email plus a bcrypt password hash;
VerifyAdmin reports the same error for either mismatch so callers cannot
distinguish a wrong email from a wrong password.

Session tokens are stateless: a random nonce joined to an HMAC signature
over a configured salt. Any process holding the salt can validate a token
without a session store, which keeps request handling free of shared
state.

	token, _ := auth.GenerateSessionToken(salt)
	err := auth.ValidateSessionToken(token, salt)
*/
package auth
