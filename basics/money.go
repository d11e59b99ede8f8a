package basics

// Item 48: avoid float64 where exact answers are required.
//
// The candy-counter example: start with a dollar, buy candies priced
// 10¢, 20¢, 30¢... float64 runs out of money at the wrong time and leaves
// impossible change. Integer cents make every quantity exact.

// BuyCandyFloat spends with float64 dollars - DON'T DO THIS with money.
// Returns candies bought and change left.
func BuyCandyFloat(funds float64) (int, float64) {
	bought := 0
	for price := 0.10; funds >= price; price += 0.10 {
		funds -= price
		bought++
	}
	return bought, funds
}

// BuyCandyCents spends integer cents; the arithmetic is exact.
func BuyCandyCents(fundsCents int64) (int, int64) {
	bought := 0
	for price := int64(10); fundsCents >= price; price += 10 {
		fundsCents -= price
		bought++
	}
	return bought, fundsCents
}
