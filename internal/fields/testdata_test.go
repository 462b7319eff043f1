package fields

// sampleCaseText is a synthetic case-detail document shaped like the SJIS
// layout: labels run together, several values print to the left of their
// labels, and the charge and fee sheets sit at the bottom.
const sampleCaseText = `STATE OF ALABAMA VS. JOHN Q PUBLIC Case Number: 01-CC199 County: 01
Case: CC-2021-000123.00
Alacourt.com 06/01/2023
11/22/1985 DOB: B/M
SSN: XXX-XX-1234
Phone: 2055551234
Address 1: 123 MAIN ST
Address 2: APT 4
City: BIRMINGHAM State: AL
Zip: 35203-0000
Country: US
Weight: 180 Height : 5'11
Eyes/Hair: BRO/BLK
Charge: MURDER (GENERAL)
Court Action: GUILTY PLEA
Court Action Date: 09/30/2021
Filing Date: 01/15/2021
001 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-006-002 MURDER 1ST
ACTIVE ACTIVE    D999 C001 JOHN $300.00 $0.00 $300.00 ACTIVE END
Total: $500.00 $100.00 $400.00 $0.00
`
