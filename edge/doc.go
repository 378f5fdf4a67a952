// Package edge computes binary edge maps for 8-bit grayscale images.
//
// The package is built from four layers:
//
//   - a catalog of small, immutable convolution kernels (Sobel, Prewitt,
//     Scharr, Laplacian and the Kirsch compass bank),
//   - a convolution engine that applies one kernel to one image,
//   - operators that combine one or more convolution passes into a
//     single response field, and
//   - a thresholder that turns a response field into a 0/255 mask.
//
// Convolution uses the zero border policy: pixels whose kernel footprint
// would leave the image are not computed and stay 0 in the response. The
// band is kernel.Size()/2 pixels wide on every side and is not cropped, so
// responses and masks always have the dimensions of their source image.
//
// Example:
//
//	gray, err := imageutil.LoadGray("valve.png")
//	if err != nil {
//	    return err
//	}
//	res, err := edge.Pipeline{Operator: edge.Prewitt{}, Cutoff: 100}.Run(gray)
//	if err != nil {
//	    return err
//	}
//	err = imageutil.SaveGrayImage(res.Mask, "prewitt.png")
package edge
