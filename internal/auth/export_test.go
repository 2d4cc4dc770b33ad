package auth

// GenerateAt exposes generateAt so tests can mint already-expired tokens.
var GenerateAt = (*Issuer).generateAt
