package faq

// DefaultCorpus is the built-in knowledge base used when no FAQ document
// is configured. Same numbered Q/A format the parser expects.
const DefaultCorpus = `1. What products can you print on?
We print and embroider on t-shirts, hoodies, polos, and caps. Each product comes in a range of garment colors, and we can source specific brands on request.

2. What is the difference between screen printing and embroidery?
Screen printing applies ink directly to the fabric and is best for large, colorful designs on shirts and hoodies. Embroidery stitches the design in thread and gives a premium, durable finish that works well on polos and caps.

3. How much does a custom t-shirt order cost?
Pricing depends on quantity, number of ink colors, and garment choice. As a rough guide, a one-color print on a value tee starts around $8 per shirt at 50 pieces. Larger runs bring the per-piece price down.

4. Is there a minimum order quantity?
Our minimum is 12 pieces for screen printing and 6 pieces for embroidery. Smaller runs are possible with our digital printing service at a higher per-piece cost.

5. How long does an order take?
Standard turnaround is 7 to 10 business days after art approval. Rush service is available for an additional fee if you have a hard deadline.

6. What file formats do you accept for artwork?
Vector files (AI, EPS, SVG, or PDF) give the best results. We also accept high resolution PNG and PSD files. Our art team can redraw low quality logos for a small fee.

7. Can I mix sizes within one order?
Yes, you can split your quantity across any sizes from XS to 3XL at no extra charge. Sizes above 2XL may carry a small garment upcharge from the manufacturer.

8. Do you ship orders?
We offer local delivery in the Everett and Seattle area, nationwide shipping, and free pickup from our Everett shop.

9. Can you match my brand colors?
For screen printing we mix Pantone-matched inks. For embroidery we match thread to the closest standard color. Exact matches on dark garments may need an extra underbase pass.

10. What apparel brands do you carry?
We regularly print on Gildan, Bella+Canvas, Next Level, Port & Company, and Carhartt, among others. Tell us the look and budget you want and we will recommend options.`
