/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over env vars; secrets (admin credentials, session
salt) must come from one of the two or startup fails.
*/
package cliparse
