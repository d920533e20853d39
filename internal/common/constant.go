package common

// TokenStoreKey is the credential-store key under which the bearer token
// is persisted between launches. It mirrors the key the web and mobile
// clients use, so a store can be shared across client generations.
const TokenStoreKey = "dreamcatcher_token"
