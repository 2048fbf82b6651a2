package common

// MaxNativeWidth is the widest monitor that still gets a window the size of
// the monitor. Wider monitors show the canvas at its own size.
const MaxNativeWidth = 1000

const TPS = 60
