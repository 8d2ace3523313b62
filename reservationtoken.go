package stun

import "fmt"

const reservationTokenSize = 8

// ReservationTokenAttr is the TURN RESERVATION-TOKEN attribute (RFC
// 8656 Section 14.9): an 8-byte opaque token identifying a relayed
// transport address held in reserve by the server.
type ReservationTokenAttr struct {
	Token []byte
}

// AddTo adds RESERVATION-TOKEN to m.
func (r *ReservationTokenAttr) AddTo(m *Message) error {
	if len(r.Token) != reservationTokenSize {
		return fmt.Errorf("stun: reservation token must be %d bytes, got %d", reservationTokenSize, len(r.Token))
	}
	m.Add(AttrReservationToken, r.Token)
	return nil
}

// GetFrom decodes RESERVATION-TOKEN from m.
func (r *ReservationTokenAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrReservationToken)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrReservationToken, len(v), reservationTokenSize); err != nil {
		return err
	}
	r.Token = v
	return nil
}
