// Package cashregister provides the cash register Session a company opens at the start
// of a shift and the Closing recorded when the shift ends.
//
// A Closing stores the counted tender (cash, card, pix, others), the resulting final
// balance, the balance that was expected and the signed difference between the two.
package cashregister
