package tickets

// Bill is one banknote handed over by a customer.
type Bill int

// The only denominations the box office accepts. The ticket price equals
// Bill25, so a 25 needs no change, a 50 needs one 25 back, and a 100 needs
// 75 back.
const (
	Bill25  Bill = 25
	Bill50  Bill = 50
	Bill100 Bill = 100
)

// SellTickets reports whether every customer in queue can be served in
// order, making change only from bills taken earlier in the same queue.
//
// Change policy for a 100 bill: one 50 + one 25 when a 50 is available,
// otherwise three 25s. This exact preference is load-bearing; do not
// "optimize" it.
//
// Returns false the moment change cannot be made; true once the queue is
// exhausted. An empty queue is trivially served.
func SellTickets(queue []Bill) bool {
	var n25, n50 int // bills held in the till

	for _, bill := range queue {
		switch bill {
		case Bill25:
			n25++
		case Bill50:
			if n25 < 1 {
				return false
			}
			n25--
			n50++
		case Bill100:
			switch {
			case n50 >= 1 && n25 >= 1:
				n50--
				n25--
			case n25 >= 3:
				n25 -= 3
			default:
				return false
			}
		}
	}

	return true
}
