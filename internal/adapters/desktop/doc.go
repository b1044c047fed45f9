// Package desktop adapts the local machine's clipboard, browser and share
// capabilities to the ports the quote provider depends on.
//
// Every adapter here is opportunistic: on a headless box the clipboard
// errors and the opener fails, and callers degrade silently.
package desktop
