package analytics

import "github.com/chrisdamba/foodinsights/internal/models"

func analyzeCostOptimization(orders []timedOrder) models.CostOptimizationAnalytics {
	var totalValue, totalFees float64
	var voucherSum float64
	var voucherValueSum, plainValueSum float64
	var voucherCount, plainCount int

	var feeMin, feeMax, feeSum float64
	var belowOptimal int

	for i, order := range orders {
		fees := order.DeliveryFee + order.ServiceFee
		totalValue += order.TotalValue
		totalFees += fees

		if order.VoucherDiscount > 0 {
			voucherSum += order.VoucherDiscount
			voucherValueSum += order.TotalValue
			voucherCount++
		} else {
			plainValueSum += order.TotalValue
			plainCount++
		}

		if i == 0 || order.DeliveryFee < feeMin {
			feeMin = order.DeliveryFee
		}
		if i == 0 || order.DeliveryFee > feeMax {
			feeMax = order.DeliveryFee
		}
		feeSum += order.DeliveryFee
	}

	feeMean := feeSum / float64(len(orders))

	// heuristic: delivery fee should stay around 10% of the order
	optimal := feeMean * 10
	for _, order := range orders {
		if order.Subtotal < optimal {
			belowOptimal++
		}
	}

	foodCost := totalValue - totalFees
	var feeToFood float64
	if foodCost > 0 {
		feeToFood = totalFees / foodCost * 100
	}

	var avgVoucher, avgWithVoucher, avgWithoutVoucher float64
	if voucherCount > 0 {
		avgVoucher = voucherSum / float64(voucherCount)
		avgWithVoucher = voucherValueSum / float64(voucherCount)
	}
	if plainCount > 0 {
		avgWithoutVoucher = plainValueSum / float64(plainCount)
	}

	return models.CostOptimizationAnalytics{
		FeeToFoodRatio:              round2(feeToFood),
		AverageFeePercentage:        round2(percentage(totalFees, totalValue)),
		AverageVoucherDiscount:      round2(avgVoucher),
		AvgOrderValueWithVoucher:    round2(avgWithVoucher),
		AvgOrderValueWithoutVoucher: round2(avgWithoutVoucher),
		DeliveryFeeVariance: models.DeliveryFeeVariance{
			Min:  feeMin,
			Max:  feeMax,
			Mean: round2(feeMean),
		},
		OptimalOrderValue: round2(optimal),
		PotentialSavings:  round2(float64(belowOptimal) * feeMean * 0.5),
	}
}
