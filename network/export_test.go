package network

// seatHolder returns the id of the connection driving seat.
func seatHolder(seat string) (int64, bool) {
	v, ok := seats.Get(seat)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}
