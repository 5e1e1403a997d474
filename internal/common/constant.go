package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SaltSize is the number of random bytes used when deriving a verifier.
const SaltSize = 32
