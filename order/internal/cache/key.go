package cache

const KeyCart = "carts:"
